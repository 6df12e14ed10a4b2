package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"yardura-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Alta de lead pública (el wizard y el formulario de contacto postean acá).
	r.Post("/leads", createLeadHandler(svc))

	// Gestión: requiere usuario autenticado (equipo de ventas).
	r.Get("/leads", listLeadsHandler(svc))
	r.Route("/leads/{leadID}", func(lr chi.Router) {
		lr.Get("/", getLeadHandler(svc))
		lr.Post("/assign", assignLeadHandler(svc))
		lr.Post("/status", transitionLeadHandler(svc))
	})
}

type createLeadRequest struct {
	QuoteID string `json:"quote_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	ZipCode string `json:"zip_code"`
	Notes   string `json:"notes"`
}

type assignLeadRequest struct {
	AssigneeID string `json:"assignee_id"`
}

type transitionLeadRequest struct {
	Status Status `json:"status" enums:"new,contacted,converted,lost"`
}

type leadResponse struct {
	ID         string     `json:"id"`
	QuoteID    string     `json:"quote_id,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Name       string     `json:"name,omitempty"`
	ZipCode    string     `json:"zip_code,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Status     Status     `json:"status"`
	AssigneeID string     `json:"assignee_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
}

// createLeadHandler godoc
// @Summary Crear lead
// @Description Da de alta un lead en el pipeline de ventas (status inicial `new`). Endpoint público. Requiere al menos email o teléfono.
// @Tags leads
// @Accept json
// @Produce json
// @Param payload body createLeadRequest true "Datos de contacto; quote_id opcional"
// @Success 201 {object} leadResponse
// @Failure 400 {string} string "invalid json / contacto faltante"
// @Router /leads [post]
func createLeadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.Create(r.Context(), CreateInput{
			QuoteID: req.QuoteID,
			Email:   req.Email,
			Phone:   req.Phone,
			Name:    req.Name,
			ZipCode: req.ZipCode,
			Notes:   req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toLeadResponse(l))
	}
}

// listLeadsHandler godoc
// @Summary Listar leads
// @Description Lista leads filtrando por status y/o asignado. Solo para usuarios autenticados del equipo.
// @Tags leads
// @Produce json
// @Param status query string false "Filtrar por status (new|contacted|converted|lost)"
// @Param assignee query string false "Filtrar por rep asignado"
// @Param limit query int false "Máximo de leads a devolver (1-200). Por defecto 50"
// @Success 200 {array} leadResponse
// @Failure 400 {string} string "status inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /leads [get]
func listLeadsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter := ListFilter{Limit: 50}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				filter.Limit = n
			}
		}
		if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
			filter.Status = Status(v)
		}
		if v := strings.TrimSpace(r.URL.Query().Get("assignee")); v != "" {
			filter.AssigneeID = v
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid status filter", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]leadResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLeadResponse(l))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getLeadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "leadID"))
		if err != nil {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toLeadResponse(l))
	}
}

// assignLeadHandler godoc
// @Summary Asignar lead a un rep
// @Tags leads
// @Accept json
// @Produce json
// @Param leadID path string true "ID del lead"
// @Param payload body assignLeadRequest true "Rep asignado"
// @Success 200 {object} leadResponse
// @Failure 400 {string} string "assignee_id required"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "lead not found"
// @Router /leads/{leadID}/assign [post]
func assignLeadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req assignLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.Assign(r.Context(), chi.URLParam(r, "leadID"), req.AssigneeID)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "assignee_id required", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "lead not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toLeadResponse(l))
	}
}

// transitionLeadHandler godoc
// @Summary Cambiar status de un lead
// @Description Mueve el lead por el ciclo de vida new→contacted→converted|lost. Transiciones inválidas devuelven 409.
// @Tags leads
// @Accept json
// @Produce json
// @Param leadID path string true "ID del lead"
// @Param payload body transitionLeadRequest true "Status destino"
// @Success 200 {object} leadResponse
// @Failure 400 {string} string "status inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "lead not found"
// @Failure 409 {string} string "invalid status transition"
// @Router /leads/{leadID}/status [post]
func transitionLeadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req transitionLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.Transition(r.Context(), chi.URLParam(r, "leadID"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid status", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "lead not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toLeadResponse(l))
	}
}

func toLeadResponse(l Lead) leadResponse {
	return leadResponse{
		ID:         l.ID,
		QuoteID:    l.QuoteID,
		Email:      l.Email,
		Phone:      l.Phone,
		Name:       l.Name,
		ZipCode:    l.ZipCode,
		Notes:      l.Notes,
		Status:     l.Status,
		AssigneeID: l.AssigneeID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
		ClosedAt:   l.ClosedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
