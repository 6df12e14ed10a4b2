package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"yardura-service/internal/domain/pricing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Quote
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Quote{}}
}

func (r *testRepo) Create(ctx context.Context, q Quote) error {
	if q.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[q.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[q.ID] = q
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return Quote{}, errRepoNotFound
	}
	return q, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_FreezesAmounts(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	q, err := svc.Create(context.Background(), CreateInput{
		Email:     "ana@example.com",
		Dogs:      1,
		Frequency: pricing.FrequencyWeekly,
		YardSize:  pricing.YardMedium,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if q.PerVisitCents != 2000 {
		t.Fatalf("expected per-visit 2000, got %d", q.PerVisitCents)
	}
	if q.MonthlyCents != 8660 {
		t.Fatalf("expected monthly 8660, got %d", q.MonthlyCents)
	}
	if q.OneTimeCents != 8900 {
		t.Fatalf("expected one-time 8900, got %d", q.OneTimeCents)
	}
	if q.StripeLookupKey != "weekly_medium_1dog" {
		t.Fatalf("expected lookup key weekly_medium_1dog, got %q", q.StripeLookupKey)
	}
	if q.InitialClean != nil {
		t.Fatalf("no bucket/date given, InitialClean should be nil")
	}
	if q.CreatedAt != now {
		t.Fatalf("expected CreatedAt to be now")
	}

	// Persistida y recuperable.
	got, err := svc.GetByID(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.PerVisitCents != q.PerVisitCents {
		t.Fatalf("persisted quote differs")
	}
}

func TestService_Create_InitialCleanFromBucket(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	q, err := svc.Create(context.Background(), CreateInput{
		Email:     "ana@example.com",
		Dogs:      1,
		Frequency: pricing.FrequencyWeekly,
		YardSize:  pricing.YardMedium,
		Bucket:    pricing.Bucket42,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if q.InitialClean == nil {
		t.Fatalf("expected initial clean estimate")
	}
	// base 2000 × 1.75 × 0.95 = 3325 < floor 6900 => gana el floor
	if q.InitialClean.InitialCleanCents != 6900 {
		t.Fatalf("expected initial clean 6900, got %d", q.InitialClean.InitialCleanCents)
	}
	if q.InitialClean.Bucket != pricing.Bucket42 {
		t.Fatalf("expected bucket 42, got %s", q.InitialClean.Bucket)
	}
}

func TestService_Create_InitialCleanFromDate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	last := now.AddDate(0, 0, -100)
	q, err := svc.Create(context.Background(), CreateInput{
		Email:           "ana@example.com",
		Dogs:            2,
		Frequency:       pricing.FrequencyWeekly,
		YardSize:        pricing.YardMedium,
		LastCleanedDate: &last,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if q.InitialClean == nil {
		t.Fatalf("expected initial clean estimate")
	}
	if q.InitialClean.Bucket != pricing.BucketUnknown {
		t.Fatalf("100 days ago should map to bucket 999, got %s", q.InitialClean.Bucket)
	}
}

func TestService_Create_Commercial_RequiresCustomQuote(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	q, err := svc.Create(context.Background(), CreateInput{
		Email:      "oficina@example.com",
		Commercial: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !q.RequiresCustomQuote {
		t.Fatalf("expected requires_custom_quote")
	}
	if q.PerVisitCents != 0 || q.MonthlyCents != 0 || q.OneTimeCents != 0 {
		t.Fatalf("commercial quote should have zeroed amounts")
	}
	if q.StripeLookupKey != "" {
		t.Fatalf("commercial quote should have no lookup key")
	}
}

func TestService_Create_OutsideCatalogRange(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	q, err := svc.Create(context.Background(), CreateInput{
		Email:     "ana@example.com",
		Dogs:      10,
		Frequency: pricing.FrequencyWeekly,
		YardSize:  pricing.YardMedium,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	// La fórmula extrapola; solo el catálogo tiene techo.
	if q.PerVisitCents != 5600 {
		t.Fatalf("expected per-visit 5600 for 10 dogs, got %d", q.PerVisitCents)
	}
	if q.StripeLookupKey != "" {
		t.Fatalf("expected empty lookup key outside 1..8 dogs, got %q", q.StripeLookupKey)
	}
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{
		Dogs:      1,
		Frequency: pricing.FrequencyWeekly,
		YardSize:  pricing.YardMedium,
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without email, got %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		Email:     "ana@example.com",
		Dogs:      0,
		Frequency: pricing.FrequencyWeekly,
		YardSize:  pricing.YardMedium,
	}); !errors.Is(err, pricing.ErrInvalidDogs) {
		t.Fatalf("expected pricing.ErrInvalidDogs, got %v", err)
	}
}
