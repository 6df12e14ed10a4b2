package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"yardura-service/internal/adapters/billing/stripe"
	"yardura-service/internal/domain/pricing"
	"yardura-service/internal/platform/logger"
	"yardura-service/internal/router"
)

// @title Yardura Service API
// @version 0.1
// @description API del servicio de limpieza de patios: pricing, cotizaciones, lecturas de depósitos y vista de bienestar.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Con STRIPE_API_KEY seteada, publicamos el catálogo al arrancar.
	// Es idempotente: las lookup keys existentes se saltean.
	if key := os.Getenv("STRIPE_API_KEY"); key != "" {
		syncStripeCatalog(log, key)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: nil, // sin verifier para modo dev
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func syncStripeCatalog(log logger.Logger, apiKey string) {
	client, err := stripe.NewClient(stripe.Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv("STRIPE_BASE_URL"), // vacío => api.stripe.com
	}, log)
	if err != nil {
		log.Error("stripe client init failed", map[string]any{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	created, err := client.SyncCatalog(ctx, pricing.GenerateCatalog())
	if err != nil {
		// El catálogo puede quedar a medio publicar; el próximo arranque retoma.
		log.Error("stripe catalog sync failed", map[string]any{
			"created": created,
			"error":   err.Error(),
		})
		return
	}
	log.Info("stripe catalog synced", map[string]any{"created": created})
}
