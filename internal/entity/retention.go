package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const oneHundred = 100

// TaxRetentionRule is the withholding configuration for one economic-activity
// classification code (CNAE). Rates are whole-number percentages: 1.5 means
// 1.5%. Payments below MinimumValue are exempt.
type TaxRetentionRule struct {
	ID           uuid.UUID
	ActivityCode string
	Description  string
	IRRFRate     decimal.Decimal
	PISRate      decimal.Decimal
	COFINSRate   decimal.Decimal
	CSLLRate     decimal.Decimal
	ISSRate      decimal.Decimal
	MinimumValue decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewTaxRetentionRule(
	activityCode, description string,
	irrf, pis, cofins, csll, iss, minimumValue decimal.Decimal,
) (TaxRetentionRule, error) {
	now := time.Now()

	r := TaxRetentionRule{
		ID:           uuid.Must(uuid.NewV4()),
		ActivityCode: activityCode,
		Description:  description,
		IRRFRate:     irrf,
		PISRate:      pis,
		COFINSRate:   cofins,
		CSLLRate:     csll,
		ISSRate:      iss,
		MinimumValue: minimumValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := r.Validate()
	if err != nil {
		return TaxRetentionRule{}, err
	}

	return r, nil
}

func (r TaxRetentionRule) Validate() error {
	if r.ActivityCode == "" {
		return fmt.Errorf("%w: rule activity code is empty", ErrInvalidArgument)
	}

	if r.Description == "" {
		return fmt.Errorf("%w: rule description is empty", ErrInvalidArgument)
	}

	for _, rate := range []decimal.Decimal{r.IRRFRate, r.PISRate, r.COFINSRate, r.CSLLRate, r.ISSRate} {
		if rate.IsNegative() {
			return fmt.Errorf("%w: negative retention rate %s", ErrInvalidArgument, rate)
		}
	}

	if r.MinimumValue.IsNegative() {
		return fmt.Errorf("%w: negative rule minimum value %s", ErrInvalidArgument, r.MinimumValue)
	}

	return nil
}

// Retention is the five-tax withholding breakdown for one payment.
type Retention struct {
	IRRF   decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	CSLL   decimal.Decimal
	ISS    decimal.Decimal
	Total  decimal.Decimal
}

func ZeroRetention() Retention {
	return Retention{
		IRRF:   decimal.Zero,
		PIS:    decimal.Zero,
		COFINS: decimal.Zero,
		CSLL:   decimal.Zero,
		ISS:    decimal.Zero,
		Total:  decimal.Zero,
	}
}

// CalculateRetention computes the withholding breakdown for a gross value.
// A nil rule means no withholding is configured for the activity code and the
// breakdown is all zeros; the same applies below the rule's minimum value.
// Amounts are grossValue * rate / 100, summed without intermediate rounding.
// Currency rounding is a presentation concern.
func CalculateRetention(grossValue decimal.Decimal, rule *TaxRetentionRule) Retention {
	if rule == nil || grossValue.LessThan(rule.MinimumValue) {
		return ZeroRetention()
	}

	hundred := decimal.New(oneHundred, 0)

	r := Retention{
		IRRF:   grossValue.Mul(rule.IRRFRate).Div(hundred),
		PIS:    grossValue.Mul(rule.PISRate).Div(hundred),
		COFINS: grossValue.Mul(rule.COFINSRate).Div(hundred),
		CSLL:   grossValue.Mul(rule.CSLLRate).Div(hundred),
		ISS:    grossValue.Mul(rule.ISSRate).Div(hundred),
	}

	r.Total = r.IRRF.Add(r.PIS).Add(r.COFINS).Add(r.CSLL).Add(r.ISS)

	return r
}
