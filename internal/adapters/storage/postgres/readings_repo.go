package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"yardura-service/internal/domain/readings"
)

type ReadingsRepo struct {
	db *sql.DB
}

func NewReadingsRepo(db *sql.DB) *ReadingsRepo {
	return &ReadingsRepo{db: db}
}

func (r *ReadingsRepo) Create(ctx context.Context, rd readings.Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO readings (
			id, dog_id,
			occurred_at, recorded_at,
			color, consistency, weight_lbs,
			notes, source, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		rd.ID,
		rd.DogID,
		rd.OccurredAt,
		rd.RecordedAt,
		rd.Color,
		rd.Consistency,
		toNullFloat(rd.WeightLbs),
		rd.Notes,
		string(rd.Source),
		string(rd.Status),
	)
	return err
}

func (r *ReadingsRepo) GetByID(ctx context.Context, id string) (readings.Reading, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return readings.Reading{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, dog_id,
			occurred_at, recorded_at,
			color, consistency, weight_lbs,
			notes, source, status
		FROM readings
		WHERE id = $1
	`, id)

	return scanReading(row.Scan)
}

func (r *ReadingsRepo) ListByDog(ctx context.Context, dogID string, filter readings.ListFilter) ([]readings.Reading, error) {
	dogID = strings.TrimSpace(dogID)
	if dogID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, dog_id,
			occurred_at, recorded_at,
			color, consistency, weight_lbs,
			notes, source, status
		FROM readings
		WHERE dog_id = $1
	`)

	args := []any{dogID}
	argN := 2

	if len(filter.Sources) > 0 {
		placeholders := make([]string, 0, len(filter.Sources))
		for _, s := range filter.Sources {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(s))
			argN++
		}
		sb.WriteString(" AND source IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	if limit > 500 {
		limit = 500
	}

	sb.WriteString(" ORDER BY occurred_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]readings.Reading, 0)
	for rows.Next() {
		rd, err := scanReading(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}

	return out, rows.Err()
}

func (r *ReadingsRepo) Void(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE readings
		SET status = 'voided'
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanReading(scan func(dest ...any) error) (readings.Reading, error) {
	var rd readings.Reading
	var weight sql.NullFloat64
	var source, status string

	if err := scan(
		&rd.ID,
		&rd.DogID,
		&rd.OccurredAt,
		&rd.RecordedAt,
		&rd.Color,
		&rd.Consistency,
		&weight,
		&rd.Notes,
		&source,
		&status,
	); err != nil {
		if err == sql.ErrNoRows {
			return readings.Reading{}, ErrNotFound
		}
		return readings.Reading{}, err
	}

	if weight.Valid {
		w := weight.Float64
		rd.WeightLbs = &w
	}
	rd.Source = readings.Source(source)
	rd.Status = readings.Status(status)

	return rd, nil
}
