package quotes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"yardura-service/internal/domain/pricing"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// El wizard de cotización es público: no exige claims.
	r.Post("/quotes", createQuoteHandler(svc))
	r.Get("/quotes/{quoteID}", getQuoteHandler(svc))
}

type createQuoteRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
	ZipCode string `json:"zip_code"`

	Dogs      int     `json:"dogs"`
	Frequency string  `json:"frequency" enums:"weekly,twice-weekly,bi-weekly,one-time"`
	YardSize  string  `json:"yard_size" enums:"small,medium,large,xlarge"`
	Deodorize bool    `json:"deodorize"`
	Litter    bool    `json:"litter"`
	Zone      float64 `json:"zone"` // opcional, multiplicador de zona

	Commercial bool `json:"commercial"`

	Bucket          string `json:"cleanup_bucket"`    // opcional: 7|14|42|999 (30/60/90 legacy)
	LastCleanedDate string `json:"last_cleaned_date"` // opcional: YYYY-MM-DD
}

type quoteResponse struct {
	ID string `json:"id"`

	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`

	Dogs      int               `json:"dogs"`
	Frequency pricing.Frequency `json:"frequency"`
	YardSize  pricing.YardSize  `json:"yard_size"`
	Deodorize bool              `json:"deodorize"`
	Litter    bool              `json:"litter"`

	Commercial          bool `json:"commercial"`
	RequiresCustomQuote bool `json:"requires_custom_quote"`

	PerVisitCents int64 `json:"per_visit_cents"`
	MonthlyCents  int64 `json:"monthly_cents"`
	OneTimeCents  int64 `json:"one_time_cents"`

	InitialClean *pricing.InitialCleanEstimate `json:"initial_clean,omitempty"`

	StripeLookupKey string `json:"stripe_lookup_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// createQuoteHandler godoc
// @Summary Crear cotización
// @Description Arma y persiste una cotización completa a partir de la configuración del servicio. Endpoint público (el wizard corre sin login). Propiedades comerciales devuelven requires_custom_quote con montos en cero.
// @Tags quotes
// @Accept json
// @Produce json
// @Param payload body createQuoteRequest true "Configuración del servicio y datos de contacto"
// @Success 201 {object} quoteResponse
// @Failure 400 {string} string "invalid json / parámetros inválidos"
// @Router /quotes [post]
func createQuoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Email:      req.Email,
			Phone:      req.Phone,
			Name:       req.Name,
			Address:    req.Address,
			ZipCode:    req.ZipCode,
			Dogs:       req.Dogs,
			AddOns:     pricing.AddOns{Deodorize: req.Deodorize, Litter: req.Litter},
			Zone:       req.Zone,
			Commercial: req.Commercial,
		}

		// Comercial no necesita configuración válida; el resto sí.
		if !req.Commercial {
			freq, err := pricing.ParseFrequency(req.Frequency)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			size, err := pricing.ParseYardSize(req.YardSize)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			in.Frequency = freq
			in.YardSize = size
		}

		if strings.TrimSpace(req.Bucket) != "" {
			if !pricing.IsValidBucket(req.Bucket) {
				http.Error(w, "cleanup_bucket must be one of 7|14|42|999", http.StatusBadRequest)
				return
			}
			in.Bucket = pricing.CleanupBucket(strings.TrimSpace(req.Bucket))
		} else if strings.TrimSpace(req.LastCleanedDate) != "" {
			t, err := time.Parse("2006-01-02", req.LastCleanedDate)
			if err != nil {
				http.Error(w, "last_cleaned_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.LastCleanedDate = &t
		}

		q, err := svc.Create(r.Context(), in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toQuoteResponse(q))
	}
}

// getQuoteHandler godoc
// @Summary Obtener cotización
// @Tags quotes
// @Produce json
// @Param quoteID path string true "ID de la cotización"
// @Success 200 {object} quoteResponse
// @Failure 404 {string} string "quote not found"
// @Router /quotes/{quoteID} [get]
func getQuoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID := chi.URLParam(r, "quoteID")
		q, err := svc.GetByID(r.Context(), quoteID)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid quote id", http.StatusBadRequest)
				return
			}
			http.Error(w, "quote not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toQuoteResponse(q))
	}
}

func toQuoteResponse(q Quote) quoteResponse {
	return quoteResponse{
		ID:                  q.ID,
		Email:               q.Email,
		Phone:               q.Phone,
		Name:                q.Name,
		Address:             q.Address,
		ZipCode:             q.ZipCode,
		Dogs:                q.Dogs,
		Frequency:           q.Frequency,
		YardSize:            q.YardSize,
		Deodorize:           q.AddOns.Deodorize,
		Litter:              q.AddOns.Litter,
		Commercial:          q.Commercial,
		RequiresCustomQuote: q.RequiresCustomQuote,
		PerVisitCents:       q.PerVisitCents,
		MonthlyCents:        q.MonthlyCents,
		OneTimeCents:        q.OneTimeCents,
		InitialClean:        q.InitialClean,
		StripeLookupKey:     q.StripeLookupKey,
		CreatedAt:           q.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
