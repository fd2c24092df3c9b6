package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/recuperatax/audit/internal/entity"
)

func (r *Repository) CreateRule(ctx context.Context, rule entity.TaxRetentionRule) error {
	const q = `
	INSERT INTO retention_rules (
		id,
		activity_code,
		description,
		irrf_rate,
		pis_rate,
		cofins_rate,
		csll_rate,
		iss_rate,
		minimum_value,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		rule.ID,
		rule.ActivityCode,
		rule.Description,
		rule.IRRFRate,
		rule.PISRate,
		rule.COFINSRate,
		rule.CSLLRate,
		rule.ISSRate,
		rule.MinimumValue,
		rule.CreatedAt,
		rule.UpdatedAt,
	)

	return err
}

func (r *Repository) Rule(ctx context.Context, id uuid.UUID) (entity.TaxRetentionRule, error) {
	q := selectRule + " WHERE id = $1"
	return scanRule(r.db.QueryRow(ctx, q, id))
}

// RuleByActivityCode returns ErrNotFound when no rule is configured for the
// code. That miss is expected, the calculator turns it into a zero breakdown.
func (r *Repository) RuleByActivityCode(ctx context.Context, code string) (entity.TaxRetentionRule, error) {
	q := selectRule + " WHERE activity_code = $1"
	return scanRule(r.db.QueryRow(ctx, q, code))
}

func (r *Repository) UpdateRule(ctx context.Context, rule entity.TaxRetentionRule) error {
	const q = `
	UPDATE retention_rules SET
		activity_code = $1,
		description = $2,
		irrf_rate = $3,
		pis_rate = $4,
		cofins_rate = $5,
		csll_rate = $6,
		iss_rate = $7,
		minimum_value = $8,
		updated_at = $9
	WHERE id = $10
	`

	result, err := r.db.Exec(
		ctx,
		q,
		rule.ActivityCode,
		rule.Description,
		rule.IRRFRate,
		rule.PISRate,
		rule.COFINSRate,
		rule.CSLLRate,
		rule.ISSRate,
		rule.MinimumValue,
		rule.UpdatedAt,
		rule.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM retention_rules WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) Rules(ctx context.Context, f entity.RuleFilter) ([]entity.TaxRetentionRule, int, error) {
	stmt := sq.Select(
		"id",
		"activity_code",
		"description",
		"irrf_rate",
		"pis_rate",
		"cofins_rate",
		"csll_rate",
		"iss_rate",
		"minimum_value",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("retention_rules").PlaceholderFormat(sq.Dollar)

	if f.ActivityCode != nil {
		stmt = stmt.Where(sq.Eq{"activity_code": *f.ActivityCode})
	}

	stmt = stmt.
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

	rules := make([]entity.TaxRetentionRule, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var rule entity.TaxRetentionRule

		var count int

		err = rows.Scan(
			&rule.ID,
			&rule.ActivityCode,
			&rule.Description,
			&rule.IRRFRate,
			&rule.PISRate,
			&rule.COFINSRate,
			&rule.CSLLRate,
			&rule.ISSRate,
			&rule.MinimumValue,
			&rule.CreatedAt,
			&rule.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		rules = append(rules, rule)
	}

	return rules, totalCount, nil
}

func scanRule(row pgx.Row) (rule entity.TaxRetentionRule, err error) {
	err = row.Scan(
		&rule.ID,
		&rule.ActivityCode,
		&rule.Description,
		&rule.IRRFRate,
		&rule.PISRate,
		&rule.COFINSRate,
		&rule.CSLLRate,
		&rule.ISSRate,
		&rule.MinimumValue,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.TaxRetentionRule{}, entity.ErrNotFound
		}

		return entity.TaxRetentionRule{}, err
	}

	return rule, nil
}
