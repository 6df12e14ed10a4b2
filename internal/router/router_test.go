package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yardura-service/internal/domain/wellness"
	"yardura-service/internal/router"
)

func TestHTTP_PricingEstimate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1 perro, weekly, patio mediano => $20.00 por visita
	st, body := doReq(t, ts.URL, "GET", "/pricing/estimate?dogs=1&frequency=weekly&yard_size=medium", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 estimate, got %d body=%s", st, string(body))
	}

	var resp struct {
		PerVisitCents   int64  `json:"per_visit_cents"`
		MonthlyCents    int64  `json:"monthly_cents"`
		OneTimeCents    int64  `json:"one_time_cents"`
		StripeLookupKey string `json:"stripe_lookup_key"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal estimate: %v body=%s", err, string(body))
	}
	if resp.PerVisitCents != 2000 {
		t.Fatalf("expected per-visit 2000, got %d", resp.PerVisitCents)
	}
	if resp.MonthlyCents != 8660 {
		t.Fatalf("expected monthly 8660, got %d", resp.MonthlyCents)
	}
	if resp.StripeLookupKey != "weekly_medium_1dog" {
		t.Fatalf("expected lookup key weekly_medium_1dog, got %q", resp.StripeLookupKey)
	}

	// Frecuencia desconocida => 400
	st, _ = doReq(t, ts.URL, "GET", "/pricing/estimate?dogs=1&frequency=daily&yard_size=medium", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown frequency, got %d", st)
	}
}

func TestHTTP_PricingCatalog(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/pricing/catalog", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 catalog, got %d", st)
	}

	var entries []map[string]any
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("unmarshal catalog: %v", err)
	}
	if len(entries) != 128 {
		t.Fatalf("expected 128 catalog entries, got %d", len(entries))
	}
}

func TestHTTP_EndToEnd_DogReadingsWellness(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Sin claims no se puede crear perro
	{
		st, _ := doReq(t, ts.URL, "POST", "/dogs", "", map[string]any{"name": "Milo"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// 2) Owner registra su perro
	dogID := createDog(t, ts.URL, ownerID, map[string]any{
		"name":  "Milo",
		"breed": "mixed",
	})

	// 3) Otro usuario no puede verlo
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID, strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger, got %d", st)
		}
	}

	// 4) Owner carga lecturas de esta semana: 2 soft + 1 normal.
	// Ancladas al lunes de la semana actual para que caigan todas en el
	// mismo rollup semanal.
	occurredBase := wellness.MondayStart(time.Now().UTC()).Add(time.Minute)
	readingIDs := make([]string, 0, 3)
	for i, consistency := range []string{"soft", "soft", "firm"} {
		id := createReading(t, ts.URL, ownerID, dogID, map[string]any{
			"occurred_at": occurredBase.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
			"color":       "brown",
			"consistency": consistency,
		})
		readingIDs = append(readingIDs, id)
	}

	// 5) Otro usuario no puede cargar lecturas
	{
		st, _ := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/readings", strangerID, map[string]any{
			"occurred_at": time.Now().UTC().Format(time.RFC3339),
			"color":       "brown",
			"consistency": "firm",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create reading by stranger, got %d", st)
		}
	}

	// 6) Listado de lecturas
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/readings", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list readings, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 3 {
			t.Fatalf("expected 3 readings, got %d", len(items))
		}
	}

	// 7) Vista de bienestar: semana actual con 67% soft => monitor de semana,
	// pero una sola semana soft => status general good
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/wellness", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 wellness, got %d body=%s", st, string(body))
		}

		var resp struct {
			LatestStatus string `json:"latest_status"`
			Weekly       []struct {
				Deposits int      `json:"deposits"`
				Issues   []string `json:"issues"`
				Status   string   `json:"status"`
			} `json:"weekly"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal wellness: %v body=%s", err, string(body))
		}
		if resp.LatestStatus != "good" {
			t.Fatalf("expected overall good with one soft week, got %s", resp.LatestStatus)
		}
		if len(resp.Weekly) != 8 {
			t.Fatalf("expected 8 weekly rollups, got %d", len(resp.Weekly))
		}
		current := resp.Weekly[len(resp.Weekly)-1]
		if current.Deposits != 3 {
			t.Fatalf("expected 3 deposits in current week, got %d", current.Deposits)
		}
		if current.Status != "monitor" {
			t.Fatalf("expected current week monitor (67%% soft), got %s", current.Status)
		}
	}

	// 8) Void de una lectura soft la saca de la vista
	{
		st, body := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/readings/"+readingIDs[0]+"/void", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 void reading, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/wellness", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 wellness after void, got %d", st)
		}
		var resp struct {
			Weekly []struct {
				Deposits int `json:"deposits"`
			} `json:"weekly"`
		}
		_ = json.Unmarshal(body, &resp)
		if got := resp.Weekly[len(resp.Weekly)-1].Deposits; got != 2 {
			t.Fatalf("expected 2 deposits after void, got %d", got)
		}
	}

	// 9) Wellness de otro usuario => 403
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/wellness", strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 wellness for stranger, got %d", st)
		}
	}
}

func TestHTTP_QuoteFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Cotización pública, sin usuario
	st, body := doReq(t, ts.URL, "POST", "/quotes", "", map[string]any{
		"email":          "ana@example.com",
		"dogs":           1,
		"frequency":      "weekly",
		"yard_size":      "medium",
		"cleanup_bucket": "42",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create quote, got %d body=%s", st, string(body))
	}

	var quote struct {
		ID            string `json:"id"`
		PerVisitCents int64  `json:"per_visit_cents"`
		InitialClean  *struct {
			InitialCleanCents int64 `json:"initial_clean_cents"`
		} `json:"initial_clean"`
	}
	if err := json.Unmarshal(body, &quote); err != nil {
		t.Fatalf("unmarshal quote: %v", err)
	}
	if quote.PerVisitCents != 2000 {
		t.Fatalf("expected per-visit 2000, got %d", quote.PerVisitCents)
	}
	if quote.InitialClean == nil || quote.InitialClean.InitialCleanCents != 6900 {
		t.Fatalf("expected initial clean 6900, got %+v", quote.InitialClean)
	}

	// Recuperable por ID
	st, body = doReq(t, ts.URL, "GET", "/quotes/"+quote.ID, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get quote, got %d body=%s", st, string(body))
	}

	// Comercial => requires_custom_quote
	st, body = doReq(t, ts.URL, "POST", "/quotes", "", map[string]any{
		"email":      "oficina@example.com",
		"commercial": true,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 commercial quote, got %d body=%s", st, string(body))
	}
	var commercial struct {
		RequiresCustomQuote bool  `json:"requires_custom_quote"`
		PerVisitCents       int64 `json:"per_visit_cents"`
	}
	_ = json.Unmarshal(body, &commercial)
	if !commercial.RequiresCustomQuote || commercial.PerVisitCents != 0 {
		t.Fatalf("expected custom-quote with zeroed amounts, got %s", string(body))
	}
}

func TestHTTP_LeadLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	repID := "rep-1"

	// Alta pública
	st, body := doReq(t, ts.URL, "POST", "/leads", "", map[string]any{
		"email":    "ana@example.com",
		"zip_code": "55118",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create lead, got %d body=%s", st, string(body))
	}
	var lead struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &lead)
	if lead.Status != "new" {
		t.Fatalf("expected status new, got %s", lead.Status)
	}

	// Listado exige usuario
	{
		st, _ := doReq(t, ts.URL, "GET", "/leads?status=new", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 listing without user, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/leads?status=new", repID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing leads, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 lead in status new, got %d", len(items))
		}
	}

	// Asignación y transición
	{
		st, body := doReq(t, ts.URL, "POST", "/leads/"+lead.ID+"/assign", repID, map[string]any{
			"assignee_id": repID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 assign, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/leads/"+lead.ID+"/status", repID, map[string]any{
			"status": "contacted",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 transition, got %d body=%s", st, string(body))
		}
	}

	// Transición desde estado terminal => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/leads/"+lead.ID+"/status", repID, map[string]any{
			"status": "converted",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 converted, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "POST", "/leads/"+lead.ID+"/status", repID, map[string]any{
			"status": "lost",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 transition from terminal, got %d", st)
		}
	}
}

func createDog(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create dog: missing id body=%s", string(body))
	}
	return resp.ID
}

func createReading(t *testing.T, baseURL, userID, dogID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs/"+dogID+"/readings", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create reading, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create reading: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
