package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/recuperatax/audit/internal/entity"
)

const uniqueViolationCode = "23505"

// CreateSupplier inserts a supplier. When another audit run created the same
// tax ID first, the unique index wins and the already-persisted row is
// returned instead, which makes resolve-or-create idempotent under
// concurrency.
func (r *Repository) CreateSupplier(ctx context.Context, s entity.Supplier) (entity.Supplier, error) {
	const q = `
	INSERT INTO suppliers (
		id,
		tax_id,
		legal_name,
		trade_name,
		activity_description,
		activity_code,
		address,
		city,
		state,
		postal_code,
		phone,
		email,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.TaxID,
		s.LegalName,
		zeronull.Text(s.TradeName),
		zeronull.Text(s.ActivityDescription),
		zeronull.Text(s.ActivityCode),
		zeronull.Text(s.Address),
		zeronull.Text(s.City),
		zeronull.Text(s.State),
		zeronull.Text(s.PostalCode),
		zeronull.Text(s.Phone),
		zeronull.Text(s.Email),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return r.SupplierByTaxID(ctx, s.TaxID)
		}

		return entity.Supplier{}, err
	}

	return s, nil
}

func (r *Repository) Supplier(ctx context.Context, id uuid.UUID) (entity.Supplier, error) {
	q := selectSupplier + " WHERE id = $1"
	return scanSupplier(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) SupplierByTaxID(ctx context.Context, taxID string) (entity.Supplier, error) {
	q := selectSupplier + " WHERE tax_id = $1"
	return scanSupplier(r.db.QueryRow(ctx, q, entity.NormalizeTaxID(taxID)))
}

func (r *Repository) UpdateSupplier(ctx context.Context, s entity.Supplier) error {
	const q = `
	UPDATE suppliers SET
		legal_name = $1,
		trade_name = $2,
		activity_description = $3,
		activity_code = $4,
		address = $5,
		city = $6,
		state = $7,
		postal_code = $8,
		phone = $9,
		email = $10,
		updated_at = $11
	WHERE id = $12
	`

	result, err := r.db.Exec(
		ctx,
		q,
		s.LegalName,
		zeronull.Text(s.TradeName),
		zeronull.Text(s.ActivityDescription),
		zeronull.Text(s.ActivityCode),
		zeronull.Text(s.Address),
		zeronull.Text(s.City),
		zeronull.Text(s.State),
		zeronull.Text(s.PostalCode),
		zeronull.Text(s.Phone),
		zeronull.Text(s.Email),
		s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM suppliers WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// StaleSuppliers returns suppliers whose registry data was last refreshed
// before the cutoff, oldest first.
func (r *Repository) StaleSuppliers(
	ctx context.Context,
	updatedBefore time.Time,
	limit int,
) (suppliers []entity.Supplier, err error) {
	q := selectSupplier + " WHERE updated_at < $1 ORDER BY updated_at ASC LIMIT $2"

	rows, err := r.db.Query(ctx, q, updatedBefore, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}

		suppliers = append(suppliers, s)
	}

	return suppliers, nil
}

func (r *Repository) Suppliers(ctx context.Context, f entity.SupplierFilter) ([]entity.Supplier, int, error) {
	stmt := sq.Select(
		"id",
		"tax_id",
		"legal_name",
		"trade_name",
		"activity_description",
		"activity_code",
		"address",
		"city",
		"state",
		"postal_code",
		"phone",
		"email",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("suppliers").PlaceholderFormat(sq.Dollar)

	stmt = applySupplierFilter(stmt, f).
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

	suppliers := make([]entity.Supplier, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var s entity.Supplier

		var count int

		err = rows.Scan(
			&s.ID,
			&s.TaxID,
			&s.LegalName,
			(*zeronull.Text)(&s.TradeName),
			(*zeronull.Text)(&s.ActivityDescription),
			(*zeronull.Text)(&s.ActivityCode),
			(*zeronull.Text)(&s.Address),
			(*zeronull.Text)(&s.City),
			(*zeronull.Text)(&s.State),
			(*zeronull.Text)(&s.PostalCode),
			(*zeronull.Text)(&s.Phone),
			(*zeronull.Text)(&s.Email),
			&s.CreatedAt,
			&s.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		suppliers = append(suppliers, s)
	}

	return suppliers, totalCount, nil
}

func applySupplierFilter(stmt sq.SelectBuilder, f entity.SupplierFilter) sq.SelectBuilder {
	if f.TaxID != nil {
		stmt = stmt.Where(sq.Eq{"tax_id": entity.NormalizeTaxID(*f.TaxID)})
	}

	if f.State != nil {
		stmt = stmt.Where(sq.Eq{"state": *f.State})
	}

	if f.ActivityCode != nil {
		stmt = stmt.Where(sq.Eq{"activity_code": *f.ActivityCode})
	}

	return stmt
}

func scanSupplier(row pgx.Row) (s entity.Supplier, err error) {
	err = row.Scan(
		&s.ID,
		&s.TaxID,
		&s.LegalName,
		(*zeronull.Text)(&s.TradeName),
		(*zeronull.Text)(&s.ActivityDescription),
		(*zeronull.Text)(&s.ActivityCode),
		(*zeronull.Text)(&s.Address),
		(*zeronull.Text)(&s.City),
		(*zeronull.Text)(&s.State),
		(*zeronull.Text)(&s.PostalCode),
		(*zeronull.Text)(&s.Phone),
		(*zeronull.Text)(&s.Email),
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Supplier{}, entity.ErrNotFound
		}

		return entity.Supplier{}, err
	}

	return s, nil
}
