package pricing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/pricing", func(pr chi.Router) {
		pr.Get("/estimate", estimateHandler())
		pr.Get("/catalog", catalogHandler())
		pr.Post("/initial-clean", initialCleanHandler())
	})
}

type estimateResponse struct {
	Frequency       Frequency `json:"frequency"`
	YardSize        YardSize  `json:"yard_size"`
	Dogs            int       `json:"dogs"`
	PerVisitCents   int64     `json:"per_visit_cents"`
	MonthlyCents    int64     `json:"monthly_cents"`
	OneTimeCents    int64     `json:"one_time_cents"`
	ZoneMultiplier  float64   `json:"zone_multiplier"`
	StripeLookupKey string    `json:"stripe_lookup_key,omitempty"`
}

// estimateHandler responde una cotización instantánea desde query params.
// Errores de validación => 400 (nunca default silencioso).
//
// @Summary Instant price estimate
// @Param dogs query int true "Dog count"
// @Param frequency query string true "weekly|twice-weekly|bi-weekly|one-time"
// @Param yard_size query string true "small|medium|large|xlarge"
// @Success 200 {object} estimateResponse
// @Router /pricing/estimate [get]
func estimateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		dogs, err := strconv.Atoi(strings.TrimSpace(q.Get("dogs")))
		if err != nil || dogs < 1 {
			http.Error(w, "dogs must be a positive integer", http.StatusBadRequest)
			return
		}

		frequency, err := ParseFrequency(strings.TrimSpace(q.Get("frequency")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		yardSize, err := ParseYardSize(strings.TrimSpace(q.Get("yard_size")))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		addOns := AddOns{
			Deodorize: q.Get("deodorize") == "true",
			Litter:    q.Get("litter") == "true",
		}

		zone := 1.0
		if z := strings.TrimSpace(q.Get("zone")); z != "" {
			zone, err = strconv.ParseFloat(z, 64)
			if err != nil || zone <= 0 {
				http.Error(w, "zone must be a positive number", http.StatusBadRequest)
				return
			}
		}

		resp := estimateResponse{
			Frequency:      frequency,
			YardSize:       yardSize,
			Dogs:           dogs,
			ZoneMultiplier: zone,
		}

		if frequency != FrequencyOneTime {
			perVisit, err := PerVisitEstimateWithZone(dogs, frequency, yardSize, addOns, zone)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			monthly, err := MonthlyProjection(perVisit, frequency)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			resp.PerVisitCents = perVisit
			resp.MonthlyCents = monthly
		}

		// El precio one-time se informa siempre (limpieza única de referencia).
		oneTime, err := OneTimeEstimateWithZone(dogs, yardSize, AddOns{Deodorize: addOns.Deodorize}, zone)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp.OneTimeCents = oneTime

		// Lookup key solo dentro del rango del catálogo; fuera de rango la
		// cotización sigue siendo válida, el catálogo no la cubre.
		if key, err := LookupKey(frequency, yardSize, dogs); err == nil {
			resp.StripeLookupKey = key
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// catalogHandler devuelve las 128 entradas del catálogo de precios.
//
// @Summary Stripe price catalog
// @Success 200 {array} PriceConfig
// @Router /pricing/catalog [get]
func catalogHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, GenerateCatalog())
	}
}

type initialCleanRequest struct {
	Dogs     int    `json:"dogs"`
	YardSize string `json:"yard_size"`

	// Uno de los dos: bucket explícito o fecha de última limpieza (YYYY-MM-DD).
	Bucket          string `json:"bucket"`
	LastCleanedDate string `json:"last_cleaned_date"`
}

type initialCleanResponse struct {
	Estimate    InitialCleanEstimate `json:"estimate"`
	BucketLabel string               `json:"bucket_label"`
}

// initialCleanHandler estima la limpieza inicial desde bucket o fecha.
//
// @Summary Initial clean estimate
// @Success 200 {object} initialCleanResponse
// @Router /pricing/initial-clean [post]
func initialCleanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req initialCleanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Dogs < 1 {
			http.Error(w, ErrInvalidDogs.Error(), http.StatusBadRequest)
			return
		}
		yardSize, err := ParseYardSize(strings.TrimSpace(req.YardSize))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var bucket CleanupBucket
		switch {
		case strings.TrimSpace(req.Bucket) != "":
			if !IsValidBucket(strings.TrimSpace(req.Bucket)) {
				http.Error(w, ErrUnknownBucket.Error(), http.StatusBadRequest)
				return
			}
			bucket = CleanupBucket(strings.TrimSpace(req.Bucket))
		case strings.TrimSpace(req.LastCleanedDate) != "":
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.LastCleanedDate))
			if err != nil {
				http.Error(w, "last_cleaned_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bucket = MapDateToBucket(t, time.Now())
		default:
			http.Error(w, "bucket or last_cleaned_date required", http.StatusBadRequest)
			return
		}

		// La limpieza inicial parte del per-visit semanal (perros + patio, sin add-ons).
		perVisit, err := PerVisitEstimate(req.Dogs, FrequencyWeekly, yardSize, AddOns{})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		est, err := CalculateInitialClean(perVisit, bucket, req.Dogs, yardSize)
		if err != nil {
			if errors.Is(err, ErrUnknownBucket) || errors.Is(err, ErrInvalidDogs) || errors.Is(err, ErrUnknownYardSize) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		label, _ := BucketLabel(bucket)
		writeJSON(w, http.StatusOK, initialCleanResponse{Estimate: est, BucketLabel: label})
	}
}

// writeJSON duplicado intencionalmente por módulo (ver nota en dogs/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
