package readings

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

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
	OccurredAt  time.Time
	Color       string
	Consistency string
	WeightLbs   *float64
	Notes       string
	Source      Source
}

func (s *Service) Create(ctx context.Context, dogID string, in CreateInput) (Reading, error) {
	if strings.TrimSpace(dogID) == "" {
		return Reading{}, ErrInvalidInput
	}
	if in.OccurredAt.IsZero() {
		return Reading{}, ErrInvalidInput
	}
	if in.WeightLbs != nil && *in.WeightLbs < 0 {
		return Reading{}, ErrInvalidInput
	}

	src := in.Source
	if src == "" {
		src = SourceRouteTech
	}

	rd := Reading{
		ID:          uuid.NewString(),
		DogID:       dogID,
		OccurredAt:  in.OccurredAt,
		RecordedAt:  s.now(),
		Color:       strings.TrimSpace(in.Color),
		Consistency: strings.TrimSpace(in.Consistency),
		WeightLbs:   in.WeightLbs,
		Notes:       strings.TrimSpace(in.Notes),
		Source:      src,
		Status:      StatusActive,
	}

	if err := s.repo.Create(ctx, rd); err != nil {
		return Reading{}, err
	}
	return rd, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Reading, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reading{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByDog(ctx context.Context, dogID string, filter ListFilter) ([]Reading, error) {
	return s.repo.ListByDog(ctx, dogID, filter)
}

// Void marca la lectura como voided (no se borra).
func (s *Service) Void(ctx context.Context, id string) (Reading, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reading{}, ErrInvalidInput
	}
	if err := s.repo.Void(ctx, id); err != nil {
		return Reading{}, err
	}
	return s.repo.GetByID(ctx, id)
}
