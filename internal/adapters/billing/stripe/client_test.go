package stripe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yardura-service/internal/domain/pricing"
)

func TestSyncCatalog_CreatesMissingPrices(t *testing.T) {
	catalog := pricing.GenerateCatalog()[:3] // 3 entradas alcanzan para el flujo

	existingKey := catalog[0].LookupKey

	var createdKeys []string
	var listCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/prices" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("unexpected auth header %q", got)
		}

		switch r.Method {
		case http.MethodGet:
			listCalls++
			keys := r.URL.Query()["lookup_keys[]"]
			if len(keys) != 3 {
				t.Errorf("expected 3 lookup keys in page, got %d", len(keys))
			}
			// Solo la primera key ya existe en Stripe
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"id": "price_existing", "lookup_key": existingKey},
				},
			})
		case http.MethodPost:
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
				t.Errorf("unexpected content type %q", ct)
			}
			if got := r.PostForm.Get("currency"); got != "usd" {
				t.Errorf("expected currency usd, got %q", got)
			}
			if got := r.PostForm.Get("transfer_lookup_key"); got != "true" {
				t.Errorf("expected transfer_lookup_key true, got %q", got)
			}
			if got := r.PostForm.Get("product_data[name]"); got == "" {
				t.Error("expected product_data[name] to be set")
			}
			// El catálogo arranca en weekly => recurrencia semanal simple
			if got := r.PostForm.Get("recurring[interval]"); got != "week" {
				t.Errorf("expected recurring interval week, got %q", got)
			}
			if got := r.PostForm.Get("recurring[interval_count]"); got != "1" {
				t.Errorf("expected interval_count 1, got %q", got)
			}
			createdKeys = append(createdKeys, r.PostForm.Get("lookup_key"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":         "price_" + r.PostForm.Get("lookup_key"),
				"lookup_key": r.PostForm.Get("lookup_key"),
			})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "sk_test_123", BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	created, err := client.SyncCatalog(context.Background(), catalog)
	if err != nil {
		t.Fatalf("sync catalog: %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 prices created, got %d", created)
	}
	if listCalls != 1 {
		t.Fatalf("expected 1 list page for 3 keys, got %d", listCalls)
	}
	if len(createdKeys) != 2 || createdKeys[0] != catalog[1].LookupKey || createdKeys[1] != catalog[2].LookupKey {
		t.Fatalf("unexpected created keys %v", createdKeys)
	}
}

func TestSyncCatalog_PagesLookupKeysBy10(t *testing.T) {
	catalog := pricing.GenerateCatalog()[:25] // 25 keys => 3 páginas

	var listCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listCalls++
			keys := r.URL.Query()["lookup_keys[]"]
			if len(keys) > 10 {
				t.Errorf("page %d exceeds lookup key limit: %d", listCalls, len(keys))
			}
			// Todas existen: no debería crear nada
			data := make([]map[string]any, 0, len(keys))
			for _, k := range keys {
				data = append(data, map[string]any{"id": "price_" + k, "lookup_key": k})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
		case http.MethodPost:
			t.Error("unexpected price creation when all keys exist")
		}
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "sk_test_123", BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	created, err := client.SyncCatalog(context.Background(), catalog)
	if err != nil {
		t.Fatalf("sync catalog: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0 created, got %d", created)
	}
	if listCalls != 3 {
		t.Fatalf("expected 3 list pages for 25 keys, got %d", listCalls)
	}
}

func TestSyncCatalog_RequiresAPIKey(t *testing.T) {
	client, err := NewClient(Config{}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.SyncCatalog(context.Background(), pricing.GenerateCatalog()); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
