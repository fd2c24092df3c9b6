package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recuperatax/audit/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreatePayment(ctx context.Context, p entity.Payment) error {
	const q = `
	INSERT INTO payments (
		id,
		client_id,
		supplier_tax_id,
		amount,
		issue_date,
		payment_date,
		document_number,
		description,
		status,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.ClientID,
		p.SupplierTaxID,
		p.Amount,
		p.IssueDate,
		p.PaymentDate,
		p.DocumentNumber,
		zeronull.Text(p.Description),
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

func (r *Repository) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	q := selectPayment + " WHERE id = $1"
	return scanPayment(r.db.QueryRow(ctx, q, id))
}

// PaymentsByClientAndPeriod returns payments whose payment date falls inside
// [from, to], ordered by payment date ascending with id as a tiebreaker so
// audit runs over the same input are deterministic.
func (r *Repository) PaymentsByClientAndPeriod(
	ctx context.Context,
	clientID uuid.UUID,
	from, to time.Time,
) (payments []entity.Payment, err error) {
	q := selectPayment + ` WHERE client_id = $1 AND payment_date >= $2 AND payment_date <= $3
	ORDER BY payment_date ASC, id ASC`

	rows, err := r.db.Query(ctx, q, clientID, from, to)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, nil
}

func (r *Repository) UpdatePaymentStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.PaymentStatus,
	updatedAt time.Time,
) error {
	const q = `UPDATE payments SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, q, status, updatedAt, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM payments WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error) {
	stmt := sq.Select(
		"id",
		"client_id",
		"supplier_tax_id",
		"amount",
		"issue_date",
		"payment_date",
		"document_number",
		"description",
		"status",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("payments").PlaceholderFormat(sq.Dollar)

	stmt = applyPaymentFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments := make([]entity.Payment, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var p entity.Payment

		var count int

		err = rows.Scan(
			&p.ID,
			&p.ClientID,
			&p.SupplierTaxID,
			&p.Amount,
			&p.IssueDate,
			&p.PaymentDate,
			&p.DocumentNumber,
			(*zeronull.Text)(&p.Description),
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		payments = append(payments, p)
	}

	return payments, totalCount, nil
}

func applyPaymentFilter(stmt sq.SelectBuilder, f entity.PaymentFilter) sq.SelectBuilder {
	if f.ClientID != nil {
		stmt = stmt.Where(sq.Eq{"client_id": *f.ClientID})
	}

	if f.SupplierTaxID != nil {
		stmt = stmt.Where(sq.Eq{"supplier_tax_id": entity.NormalizeTaxID(*f.SupplierTaxID)})
	}

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.PaymentFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"payment_date": *f.PaymentFrom})
	}

	if f.PaymentTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"payment_date": *f.PaymentTo})
	}

	return stmt
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.ClientID,
		&p.SupplierTaxID,
		&p.Amount,
		&p.IssueDate,
		&p.PaymentDate,
		&p.DocumentNumber,
		(*zeronull.Text)(&p.Description),
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	return p, nil
}
