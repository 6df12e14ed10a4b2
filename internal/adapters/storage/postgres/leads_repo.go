package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"yardura-service/internal/domain/leads"
)

type LeadsRepo struct {
	db *sql.DB
}

func NewLeadsRepo(db *sql.DB) *LeadsRepo {
	return &LeadsRepo{db: db}
}

func (r *LeadsRepo) Create(ctx context.Context, l leads.Lead) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (
			id, quote_id,
			email, phone, name, zip_code, notes,
			status, assignee_id,
			created_at, updated_at, closed_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		l.ID,
		l.QuoteID,
		l.Email,
		l.Phone,
		l.Name,
		l.ZipCode,
		l.Notes,
		string(l.Status),
		l.AssigneeID,
		l.CreatedAt,
		l.UpdatedAt,
		toNullTime(l.ClosedAt),
	)
	return err
}

func (r *LeadsRepo) Update(ctx context.Context, l leads.Lead) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE leads
		SET
			status = $2,
			assignee_id = $3,
			notes = $4,
			updated_at = $5,
			closed_at = $6
		WHERE id = $1
	`,
		l.ID,
		string(l.Status),
		l.AssigneeID,
		l.Notes,
		l.UpdatedAt,
		toNullTime(l.ClosedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadsRepo) GetByID(ctx context.Context, id string) (leads.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return leads.Lead{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, quote_id,
			email, phone, name, zip_code, notes,
			status, assignee_id,
			created_at, updated_at, closed_at
		FROM leads
		WHERE id = $1
	`, id)

	return scanLead(row.Scan)
}

func (r *LeadsRepo) List(ctx context.Context, filter leads.ListFilter) ([]leads.Lead, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, quote_id,
			email, phone, name, zip_code, notes,
			status, assignee_id,
			created_at, updated_at, closed_at
		FROM leads
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}
	if strings.TrimSpace(filter.AssigneeID) != "" {
		sb.WriteString(fmt.Sprintf(" AND assignee_id = $%d", argN))
		args = append(args, strings.TrimSpace(filter.AssigneeID))
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY created_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]leads.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, rows.Err()
}

func scanLead(scan func(dest ...any) error) (leads.Lead, error) {
	var l leads.Lead
	var status string
	var closedAt sql.NullTime

	if err := scan(
		&l.ID,
		&l.QuoteID,
		&l.Email,
		&l.Phone,
		&l.Name,
		&l.ZipCode,
		&l.Notes,
		&status,
		&l.AssigneeID,
		&l.CreatedAt,
		&l.UpdatedAt,
		&closedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return leads.Lead{}, ErrNotFound
		}
		return leads.Lead{}, err
	}

	l.Status = leads.Status(status)
	if closedAt.Valid {
		t := closedAt.Time
		l.ClosedAt = &t
	}

	return l, nil
}
