package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"yardura-service/internal/domain/pricing"
	"yardura-service/internal/domain/quotes"
)

type QuotesRepo struct {
	db *sql.DB
}

func NewQuotesRepo(db *sql.DB) *QuotesRepo {
	return &QuotesRepo{db: db}
}

func (r *QuotesRepo) Create(ctx context.Context, q quotes.Quote) error {
	// El desglose de initial clean va como JSONB: es un snapshot congelado,
	// nunca se consulta por campos.
	var initialClean any
	if q.InitialClean != nil {
		b, err := json.Marshal(q.InitialClean)
		if err != nil {
			return err
		}
		initialClean = b
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quotes (
			id,
			email, phone, name, address, zip_code,
			dogs, frequency, yard_size, deodorize, litter,
			commercial, requires_custom_quote,
			per_visit_cents, monthly_cents, one_time_cents,
			initial_clean, stripe_lookup_key,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		q.ID,
		q.Email,
		q.Phone,
		q.Name,
		q.Address,
		q.ZipCode,
		q.Dogs,
		string(q.Frequency),
		string(q.YardSize),
		q.AddOns.Deodorize,
		q.AddOns.Litter,
		q.Commercial,
		q.RequiresCustomQuote,
		q.PerVisitCents,
		q.MonthlyCents,
		q.OneTimeCents,
		initialClean,
		q.StripeLookupKey,
		q.CreatedAt,
	)
	return err
}

func (r *QuotesRepo) GetByID(ctx context.Context, id string) (quotes.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return quotes.Quote{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id,
			email, phone, name, address, zip_code,
			dogs, frequency, yard_size, deodorize, litter,
			commercial, requires_custom_quote,
			per_visit_cents, monthly_cents, one_time_cents,
			initial_clean, stripe_lookup_key,
			created_at
		FROM quotes
		WHERE id = $1
	`, id)

	var q quotes.Quote
	var frequency, yardSize string
	var initialClean []byte
	if err := row.Scan(
		&q.ID,
		&q.Email,
		&q.Phone,
		&q.Name,
		&q.Address,
		&q.ZipCode,
		&q.Dogs,
		&frequency,
		&yardSize,
		&q.AddOns.Deodorize,
		&q.AddOns.Litter,
		&q.Commercial,
		&q.RequiresCustomQuote,
		&q.PerVisitCents,
		&q.MonthlyCents,
		&q.OneTimeCents,
		&initialClean,
		&q.StripeLookupKey,
		&q.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return quotes.Quote{}, ErrNotFound
		}
		return quotes.Quote{}, err
	}

	q.Frequency = pricing.Frequency(frequency)
	q.YardSize = pricing.YardSize(yardSize)

	if len(initialClean) > 0 {
		var est pricing.InitialCleanEstimate
		if err := json.Unmarshal(initialClean, &est); err != nil {
			return quotes.Quote{}, err
		}
		q.InitialClean = &est
	}

	return q, nil
}
