package leads

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Lead
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Lead{}}
}

func (r *testRepo) Create(ctx context.Context, l Lead) error {
	if l.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[l.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) Update(ctx context.Context, l Lead) error {
	if l.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[l.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Lead, error) {
	l, ok := r.byID[id]
	if !ok {
		return Lead{}, errRepoNotFound
	}
	return l, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Lead, error) {
	out := make([]Lead, 0)
	for _, l := range r.byID {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.AssigneeID != "" && l.AssigneeID != filter.AssigneeID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_StartsNew(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	l, err := svc.Create(context.Background(), CreateInput{
		Email:   "Ana@Example.com",
		Name:    "Ana",
		ZipCode: "55118",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if l.Status != StatusNew {
		t.Fatalf("expected status new, got %s", l.Status)
	}
	if l.Email != "ana@example.com" {
		t.Fatalf("expected email normalized to lowercase, got %s", l.Email)
	}
	if l.CreatedAt != now || l.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RequiresContact(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "sin contacto"})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Con solo teléfono alcanza.
	if _, err := svc.Create(context.Background(), CreateInput{Phone: "651-555-0101"}); err != nil {
		t.Fatalf("phone-only lead should be valid, got %v", err)
	}
}

func TestService_Transition_HappyPath(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	l, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	l, err = svc.Transition(context.Background(), l.ID, StatusContacted)
	if err != nil {
		t.Fatalf("Transition to contacted error: %v", err)
	}
	if l.Status != StatusContacted {
		t.Fatalf("expected contacted, got %s", l.Status)
	}
	if l.ClosedAt != nil {
		t.Fatalf("contacted is not terminal, ClosedAt should be nil")
	}

	l, err = svc.Transition(context.Background(), l.ID, StatusConverted)
	if err != nil {
		t.Fatalf("Transition to converted error: %v", err)
	}
	if l.Status != StatusConverted {
		t.Fatalf("expected converted, got %s", l.Status)
	}
	if l.ClosedAt == nil {
		t.Fatalf("expected ClosedAt set on terminal status")
	}
}

func TestService_Transition_RejectsInvalid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	l, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// new → converted salta contacted: inválido
	if _, err := svc.Transition(context.Background(), l.ID, StatusConverted); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// terminal no transiciona
	if _, err := svc.Transition(context.Background(), l.ID, StatusLost); err != nil {
		t.Fatalf("new → lost should be valid, got %v", err)
	}
	if _, err := svc.Transition(context.Background(), l.ID, StatusContacted); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from terminal, got %v", err)
	}

	// status desconocido
	if _, err := svc.Transition(context.Background(), l.ID, Status("archived")); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_Transition_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	l, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	l, err = svc.Transition(context.Background(), l.ID, StatusContacted)
	if err != nil {
		t.Fatalf("Transition error: %v", err)
	}

	again, err := svc.Transition(context.Background(), l.ID, StatusContacted)
	if err != nil {
		t.Fatalf("idempotent transition error: %v", err)
	}
	if again.Status != StatusContacted {
		t.Fatalf("expected contacted, got %s", again.Status)
	}
}

func TestService_Assign(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	l, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	l, err = svc.Assign(context.Background(), l.ID, "rep-1")
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	if l.AssigneeID != "rep-1" {
		t.Fatalf("expected assignee rep-1, got %s", l.AssigneeID)
	}

	// Reasignación permitida
	l, err = svc.Assign(context.Background(), l.ID, "rep-2")
	if err != nil {
		t.Fatalf("Reassign error: %v", err)
	}
	if l.AssigneeID != "rep-2" {
		t.Fatalf("expected assignee rep-2, got %s", l.AssigneeID)
	}

	if _, err := svc.Assign(context.Background(), l.ID, ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty assignee, got %v", err)
	}
}

func TestService_List_Filters(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, _ := svc.Create(context.Background(), CreateInput{Email: "a@b.com"})
	b, _ := svc.Create(context.Background(), CreateInput{Email: "c@d.com"})
	_, _ = svc.Transition(context.Background(), b.ID, StatusContacted)
	_, _ = svc.Assign(context.Background(), a.ID, "rep-1")

	news, err := svc.List(context.Background(), ListFilter{Status: StatusNew})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(news) != 1 || news[0].ID != a.ID {
		t.Fatalf("expected only lead A in status new, got %#v", news)
	}

	mine, err := svc.List(context.Background(), ListFilter{AssigneeID: "rep-1"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Fatalf("expected only lead A assigned to rep-1, got %#v", mine)
	}

	if _, err := svc.List(context.Background(), ListFilter{Status: Status("bogus")}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bogus status, got %v", err)
	}
}
