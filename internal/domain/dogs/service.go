package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("dog not found")
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
	Name      string
	Breed     string
	WeightLbs *float64
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}
	if in.WeightLbs != nil && *in.WeightLbs <= 0 {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		WeightLbs:   in.WeightLbs,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Breed     *string
	WeightLbs *float64
	Notes     *string
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Name = name
	}
	if in.Breed != nil {
		d.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.WeightLbs != nil {
		if *in.WeightLbs <= 0 {
			return Dog{}, ErrInvalidInput
		}
		d.WeightLbs = in.WeightLbs
	}
	if in.Notes != nil {
		d.Notes = strings.TrimSpace(*in.Notes)
	}

	d.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}
