package leads

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("lead not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// validTransitions define el ciclo de vida del lead:
// new → contacted → converted | lost. Los estados terminales no transicionan.
var validTransitions = map[Status][]Status{
	StatusNew:       {StatusContacted, StatusLost},
	StatusContacted: {StatusConverted, StatusLost},
	StatusConverted: {},
	StatusLost:      {},
}

func IsValidStatus(s Status) bool {
	_, ok := validTransitions[s]
	return ok
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	QuoteID string
	Email   string
	Phone   string
	Name    string
	ZipCode string
	Notes   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Lead, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	phone := strings.TrimSpace(in.Phone)

	// Necesitamos al menos una vía de contacto.
	if email == "" && phone == "" {
		return Lead{}, ErrInvalidInput
	}

	now := s.now()
	l := Lead{
		ID:        uuid.NewString(),
		QuoteID:   strings.TrimSpace(in.QuoteID),
		Email:     email,
		Phone:     phone,
		Name:      strings.TrimSpace(in.Name),
		ZipCode:   strings.TrimSpace(in.ZipCode),
		Notes:     strings.TrimSpace(in.Notes),
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return Lead{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Lead{}, ErrInvalidInput
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Lead{}, ErrNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Lead, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, filter)
}

// Assign asigna (o reasigna) el lead a un rep de ventas.
func (s *Service) Assign(ctx context.Context, leadID, assigneeID string) (Lead, error) {
	leadID = strings.TrimSpace(leadID)
	assigneeID = strings.TrimSpace(assigneeID)

	if leadID == "" || assigneeID == "" {
		return Lead{}, ErrInvalidInput
	}

	l, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return Lead{}, ErrNotFound
	}

	// Idempotente
	if l.AssigneeID == assigneeID {
		return l, nil
	}

	l.AssigneeID = assigneeID
	l.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, l); err != nil {
		return Lead{}, err
	}
	return l, nil
}

// Transition mueve el lead al status destino validando el ciclo de vida.
func (s *Service) Transition(ctx context.Context, leadID string, to Status) (Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" || !IsValidStatus(to) {
		return Lead{}, ErrInvalidInput
	}

	l, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return Lead{}, ErrNotFound
	}

	// Idempotente
	if l.Status == to {
		return l, nil
	}

	allowed := false
	for _, next := range validTransitions[l.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return Lead{}, ErrInvalidTransition
	}

	now := s.now()
	l.Status = to
	l.UpdatedAt = now
	if to == StatusConverted || to == StatusLost {
		l.ClosedAt = &now
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return Lead{}, err
	}
	return l, nil
}
