package quotes

import (
	"context"
	"errors"
	"strings"
	"time"

	"yardura-service/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("quote not found")
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
	Email   string
	Phone   string
	Name    string
	Address string
	ZipCode string

	Dogs      int
	Frequency pricing.Frequency
	YardSize  pricing.YardSize
	AddOns    pricing.AddOns
	Zone      float64 // 0 = sin ajuste

	Commercial bool

	// Initial clean: bucket explícito o fecha de última limpieza.
	// Si vienen ambos gana el bucket.
	Bucket          pricing.CleanupBucket
	LastCleanedDate *time.Time
}

// Create arma la cotización completa y la persiste. Los montos se congelan
// al momento de crear; cambios de tarifas posteriores no afectan cotizaciones
// ya emitidas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Quote, error) {
	if strings.TrimSpace(in.Email) == "" {
		return Quote{}, ErrInvalidInput
	}

	now := s.now()

	q := Quote{
		ID:         uuid.NewString(),
		Email:      strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		Name:       strings.TrimSpace(in.Name),
		Address:    strings.TrimSpace(in.Address),
		ZipCode:    strings.TrimSpace(in.ZipCode),
		Dogs:       in.Dogs,
		Frequency:  in.Frequency,
		YardSize:   in.YardSize,
		AddOns:     in.AddOns,
		Commercial: in.Commercial,
		CreatedAt:  now,
	}

	// Propiedades comerciales no se cotizan por fórmula: queda todo en cero
	// y ventas arma la propuesta a mano.
	if in.Commercial {
		q.RequiresCustomQuote = true
		if err := s.repo.Create(ctx, q); err != nil {
			return Quote{}, err
		}
		return q, nil
	}

	zone := in.Zone
	if zone == 0 {
		zone = 1
	}

	// one-time resuelve al precio de limpieza única; monthly proyecta 0.
	perVisit, err := pricing.InstantQuoteWithZone(in.Dogs, in.Frequency, in.YardSize, in.AddOns, zone)
	if err != nil {
		return Quote{}, err
	}
	monthly, err := pricing.MonthlyProjection(perVisit, in.Frequency)
	if err != nil {
		return Quote{}, err
	}
	oneTime, err := pricing.OneTimeEstimateWithZone(in.Dogs, in.YardSize, pricing.AddOns{Deodorize: in.AddOns.Deodorize}, zone)
	if err != nil {
		return Quote{}, err
	}

	q.PerVisitCents = perVisit
	q.MonthlyCents = monthly
	q.OneTimeCents = oneTime

	// Initial clean sobre la base semanal sin add-ons: el add-on se cobra
	// por visita recurrente, no sobre la limpieza inicial.
	bucket := in.Bucket
	if bucket == "" && in.LastCleanedDate != nil {
		bucket = pricing.MapDateToBucket(*in.LastCleanedDate, now)
	}
	if bucket != "" {
		base, err := pricing.PerVisitEstimateWithZone(in.Dogs, pricing.FrequencyWeekly, in.YardSize, pricing.AddOns{}, zone)
		if err != nil {
			return Quote{}, err
		}
		est, err := pricing.CalculateInitialClean(base, bucket, in.Dogs, in.YardSize)
		if err != nil {
			return Quote{}, err
		}
		q.InitialClean = &est
	}

	// Fuera del rango del catálogo la cotización sigue valiendo; solo no hay
	// precio pre-creado en Stripe.
	if key, err := pricing.LookupKey(in.Frequency, in.YardSize, in.Dogs); err == nil {
		q.StripeLookupKey = key
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return Quote{}, err
	}
	return q, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Quote{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
