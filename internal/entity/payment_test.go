package entity_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/recuperatax/audit/internal/entity"
)

func TestNewPayment(t *testing.T) {
	t.Parallel()

	clientID := uuid.Must(uuid.NewV4())
	issueDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	paymentDate := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	p, err := entity.NewPayment(clientID, "12.345.678/0001-95",
		decimal.RequireFromString("1500.50"), issueDate, paymentDate, "NF-1042", "consulting")
	require.NoError(t, err)

	require.False(t, p.ID.IsNil())
	require.Equal(t, "12345678000195", p.SupplierTaxID)
	require.Equal(t, entity.PaymentStatusPending, p.Status)
	require.False(t, p.CreatedAt.IsZero())

	for _, tt := range []struct {
		name           string
		clientID       uuid.UUID
		supplierTaxID  string
		amount         string
		documentNumber string
	}{
		{
			name:           "zero amount",
			clientID:       clientID,
			supplierTaxID:  "12345678000195",
			amount:         "0",
			documentNumber: "NF-1",
		},
		{
			name:           "negative amount",
			clientID:       clientID,
			supplierTaxID:  "12345678000195",
			amount:         "-10",
			documentNumber: "NF-1",
		},
		{
			name:           "nil client",
			clientID:       uuid.Nil,
			supplierTaxID:  "12345678000195",
			amount:         "10",
			documentNumber: "NF-1",
		},
		{
			name:           "empty supplier tax id",
			clientID:       clientID,
			supplierTaxID:  "",
			amount:         "10",
			documentNumber: "NF-1",
		},
		{
			name:           "empty document number",
			clientID:       clientID,
			supplierTaxID:  "12345678000195",
			amount:         "10",
			documentNumber: "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := entity.NewPayment(tt.clientID, tt.supplierTaxID,
				decimal.RequireFromString(tt.amount), issueDate, paymentDate, tt.documentNumber, "")
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestNormalizeTaxID(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want string
	}{
		{in: "12.345.678/0001-95", want: "12345678000195"},
		{in: "12345678000195", want: "12345678000195"},
		{in: " 12 345 678 0001 95 ", want: "12345678000195"},
		{in: "", want: ""},
	} {
		require.Equal(t, tt.want, entity.NormalizeTaxID(tt.in))
	}
}

func TestSupplier_Validate(t *testing.T) {
	t.Parallel()

	_, err := entity.NewSupplier("12345678000195", entity.RegistryCompany{})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	s, err := entity.NewSupplier("12.345.678/0001-95", entity.RegistryCompany{LegalName: "ACME LTDA"})
	require.NoError(t, err)
	require.Equal(t, "12345678000195", s.TaxID)
}
