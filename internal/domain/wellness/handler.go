package wellness

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"yardura-service/internal/domain/dogs"
	"yardura-service/internal/domain/readings"
	"yardura-service/internal/middleware"
	"yardura-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, readingsSvc *readings.Service, dogsSvc *dogs.Service, log logger.Logger) {
	r.Get("/dogs/{dogID}/wellness", getWellnessHandler(readingsSvc, dogsSvc, log))
}

// getWellnessHandler godoc
// @Summary Vista de bienestar de un perro
// @Description Agrega las lecturas de depósito del perro en semanas alineadas a lunes (ventana de 8 semanas) y deriva status, score, issues, tendencias y señal de parásitos.
// @Tags wellness
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} Computed
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Failure 500 {string} string "internal error"
// @Router /dogs/{dogID}/wellness [get]
func getWellnessHandler(readingsSvc *readings.Service, dogsSvc *dogs.Service, log logger.Logger) http.HandlerFunc {
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

		now := time.Now()

		// Traemos un poco más que la ventana para cubrir semanas parciales.
		from := MondayStart(now).AddDate(0, 0, -7*DefaultWeeks)
		items, err := readingsSvc.ListByDog(r.Context(), dogID, readings.ListFilter{
			From: &from,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		in := make([]Reading, 0, len(items))
		for _, rd := range items {
			if rd.Status != readings.StatusActive {
				continue
			}
			in = append(in, Reading{
				ID:          rd.ID,
				Timestamp:   rd.OccurredAt.Format(time.RFC3339),
				Color:       rd.Color,
				Consistency: rd.Consistency,
				WeightLbs:   rd.WeightLbs,
			})
		}

		computed := ComputeWellness(in, now)
		if computed.SkippedReadings > 0 && log != nil {
			log.Warn("wellness: skipped readings with bad timestamps", map[string]any{
				"dog_id":  dogID,
				"skipped": computed.SkippedReadings,
			})
		}

		writeJSON(w, http.StatusOK, computed)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
