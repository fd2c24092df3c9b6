package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/recuperatax/audit/internal/entity"
)

func serviceRule(t *testing.T) entity.TaxRetentionRule {
	t.Helper()

	rule, err := entity.NewTaxRetentionRule("6201500", "software development",
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("0.65"),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("1"),
		decimal.RequireFromString("5"),
		decimal.RequireFromString("5000"),
	)
	require.NoError(t, err)

	return rule
}

func TestCalculateRetention(t *testing.T) {
	t.Parallel()

	rule := serviceRule(t)

	for _, tt := range []struct {
		name       string
		grossValue string
		rule       *entity.TaxRetentionRule
		want       entity.Retention
	}{
		{
			name:       "above minimum",
			grossValue: "10000",
			rule:       &rule,
			want: entity.Retention{
				IRRF:   decimal.RequireFromString("150"),
				PIS:    decimal.RequireFromString("65"),
				COFINS: decimal.RequireFromString("300"),
				CSLL:   decimal.RequireFromString("100"),
				ISS:    decimal.RequireFromString("500"),
				Total:  decimal.RequireFromString("1115"),
			},
		},
		{
			name:       "below minimum",
			grossValue: "4999",
			rule:       &rule,
			want:       entity.ZeroRetention(),
		},
		{
			name:       "just below minimum",
			grossValue: "4999.999999",
			rule:       &rule,
			want:       entity.ZeroRetention(),
		},
		{
			name:       "no rule configured",
			grossValue: "1000000",
			rule:       nil,
			want:       entity.ZeroRetention(),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.CalculateRetention(decimal.RequireFromString(tt.grossValue), tt.rule)

			require.True(t, tt.want.IRRF.Equal(got.IRRF), "irrf = %s, want %s", got.IRRF, tt.want.IRRF)
			require.True(t, tt.want.PIS.Equal(got.PIS), "pis = %s, want %s", got.PIS, tt.want.PIS)
			require.True(t, tt.want.COFINS.Equal(got.COFINS), "cofins = %s, want %s", got.COFINS, tt.want.COFINS)
			require.True(t, tt.want.CSLL.Equal(got.CSLL), "csll = %s, want %s", got.CSLL, tt.want.CSLL)
			require.True(t, tt.want.ISS.Equal(got.ISS), "iss = %s, want %s", got.ISS, tt.want.ISS)
			require.True(t, tt.want.Total.Equal(got.Total), "total = %s, want %s", got.Total, tt.want.Total)
		})
	}
}

func TestCalculateRetention_TotalIsExactSum(t *testing.T) {
	t.Parallel()

	rule := serviceRule(t)

	for _, grossValue := range []string{"5000", "5000.01", "7777.77", "123456.78"} {
		got := entity.CalculateRetention(decimal.RequireFromString(grossValue), &rule)

		sum := got.IRRF.Add(got.PIS).Add(got.COFINS).Add(got.CSLL).Add(got.ISS)
		require.True(t, sum.Equal(got.Total), "gross %s: total = %s, sum = %s", grossValue, got.Total, sum)
	}
}

func TestCalculateRetention_AtMinimumApplies(t *testing.T) {
	t.Parallel()

	rule := serviceRule(t)

	got := entity.CalculateRetention(decimal.RequireFromString("5000"), &rule)
	require.False(t, got.Total.IsZero())
}

func TestNewTaxRetentionRule_Validation(t *testing.T) {
	t.Parallel()

	valid := func() []decimal.Decimal {
		return []decimal.Decimal{
			decimal.RequireFromString("1.5"),
			decimal.RequireFromString("0.65"),
			decimal.RequireFromString("3"),
			decimal.RequireFromString("1"),
			decimal.RequireFromString("5"),
		}
	}

	t.Run("negative rate", func(t *testing.T) {
		t.Parallel()

		for i := range 5 {
			rates := valid()
			rates[i] = decimal.RequireFromString("-0.01")

			_, err := entity.NewTaxRetentionRule("6201500", "desc",
				rates[0], rates[1], rates[2], rates[3], rates[4], decimal.Zero)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		}
	})

	t.Run("negative minimum", func(t *testing.T) {
		t.Parallel()

		rates := valid()

		_, err := entity.NewTaxRetentionRule("6201500", "desc",
			rates[0], rates[1], rates[2], rates[3], rates[4], decimal.RequireFromString("-1"))
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("empty activity code", func(t *testing.T) {
		t.Parallel()

		rates := valid()

		_, err := entity.NewTaxRetentionRule("", "desc",
			rates[0], rates[1], rates[2], rates[3], rates[4], decimal.Zero)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("zero rates are allowed", func(t *testing.T) {
		t.Parallel()

		_, err := entity.NewTaxRetentionRule("6201500", "desc",
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
	})
}
