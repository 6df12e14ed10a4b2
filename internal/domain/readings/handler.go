package readings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"yardura-service/internal/domain/dogs"
	"yardura-service/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service) {
	r.Route("/dogs/{dogID}/readings", func(rr chi.Router) {
		rr.Post("/", createReadingHandler(svc, dogsSvc))
		rr.Get("/", listReadingsHandler(svc, dogsSvc))

		// Anular (void) lectura mal cargada
		rr.Post("/{readingID}/void", voidReadingHandler(svc, dogsSvc))
	})
}

type createReadingRequest struct {
	OccurredAt  string   `json:"occurred_at"` // RFC3339
	Color       string   `json:"color"`
	Consistency string   `json:"consistency"`
	WeightLbs   *float64 `json:"weight_lbs"`
	Notes       string   `json:"notes"`
	Source      Source   `json:"source" enums:"route_tech,sensor,import"` // opcional
}

type readingResponse struct {
	ID          string    `json:"id"`
	DogID       string    `json:"dog_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	RecordedAt  time.Time `json:"recorded_at"`
	Color       string    `json:"color"`
	Consistency string    `json:"consistency"`
	WeightLbs   *float64  `json:"weight_lbs,omitempty"`
	Notes       string    `json:"notes"`
	Source      Source    `json:"source"`
	Status      Status    `json:"status"`
}

// createReadingHandler godoc
// @Summary Registrar una lectura de depósito
// @Description Registra una observación de depósito para el perro indicado. Solo el dueño del perro puede cargar lecturas vía API; las rutas de campo usan la misma operación con su propio usuario.
// @Tags readings
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body createReadingRequest true "Datos de la lectura; occurred_at en formato RFC3339"
// @Success 201 {object} readingResponse
// @Failure 400 {string} string "invalid json / occurred_at inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/readings [post]
func createReadingHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		owner, err := dogsSvc.OwnerOf(r.Context(), dogID)
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createReadingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			http.Error(w, "occurred_at must be RFC3339", http.StatusBadRequest)
			return
		}

		rd, err := svc.Create(r.Context(), dogID, CreateInput{
			OccurredAt:  t,
			Color:       req.Color,
			Consistency: req.Consistency,
			WeightLbs:   req.WeightLbs,
			Notes:       req.Notes,
			Source:      req.Source,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toReadingResponse(rd))
	}
}

// listReadingsHandler godoc
// @Summary Listar lecturas de un perro
// @Description Lista las lecturas de depósito de un perro del dueño autenticado. Permite filtrar por fuente y rango de fechas.
// @Tags readings
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param limit query int false "Máximo de lecturas a devolver (1-500). Por defecto 200"
// @Param sources query string false "Lista CSV de fuentes a incluir (ej: route_tech,sensor)"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Success 200 {array} readingResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/readings [get]
func listReadingsHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		owner, err := dogsSvc.OwnerOf(r.Context(), dogID)
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByDog(r.Context(), dogID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]readingResponse, 0, len(items))
		for _, rd := range items {
			out = append(out, toReadingResponse(rd))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// voidReadingHandler godoc
// @Summary Anular (void) una lectura
// @Tags readings
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param readingID path string true "ID de la lectura"
// @Success 200 {object} readingResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "reading not found"
// @Router /dogs/{dogID}/readings/{readingID}/void [post]
func voidReadingHandler(svc *Service, dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dogID := chi.URLParam(r, "dogID")
		readingID := chi.URLParam(r, "readingID")

		owner, err := dogsSvc.OwnerOf(r.Context(), dogID)
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		// Lectura existe y pertenece al perro
		rd, err := svc.GetByID(r.Context(), readingID)
		if err != nil || strings.TrimSpace(rd.ID) == "" || rd.DogID != dogID {
			http.Error(w, "reading not found", http.StatusNotFound)
			return
		}

		updated, err := svc.Void(r.Context(), readingID)
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "not found") {
				http.Error(w, "reading not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toReadingResponse(updated))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 200
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// sources=route_tech,sensor
	if v := strings.TrimSpace(r.URL.Query().Get("sources")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]Source, 0, len(parts))
		for _, p := range parts {
			s := Source(strings.TrimSpace(p))
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		if len(out) > 0 {
			filter.Sources = out
		}
	}

	// from/to RFC3339
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toReadingResponse(rd Reading) readingResponse {
	return readingResponse{
		ID:          rd.ID,
		DogID:       rd.DogID,
		OccurredAt:  rd.OccurredAt,
		RecordedAt:  rd.RecordedAt,
		Color:       rd.Color,
		Consistency: rd.Consistency,
		WeightLbs:   rd.WeightLbs,
		Notes:       rd.Notes,
		Source:      rd.Source,
		Status:      rd.Status,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
