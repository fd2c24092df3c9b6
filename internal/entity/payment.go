package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCanceled:
		return true
	}

	return false
}

// Payment is one accounts-payable disbursement of a client to a supplier.
// The supplier is referenced by its national tax ID (CNPJ, digits only).
type Payment struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	SupplierTaxID  string
	Amount         decimal.Decimal
	IssueDate      time.Time
	PaymentDate    time.Time
	DocumentNumber string
	Description    string
	Status         PaymentStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPayment builds a pending payment and validates its invariants.
// Invalid input fails here, not at audit time.
func NewPayment(
	clientID uuid.UUID,
	supplierTaxID string,
	amount decimal.Decimal,
	issueDate, paymentDate time.Time,
	documentNumber, description string,
) (Payment, error) {
	now := time.Now()

	p := Payment{
		ID:             uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		SupplierTaxID:  NormalizeTaxID(supplierTaxID),
		Amount:         amount,
		IssueDate:      issueDate,
		PaymentDate:    paymentDate,
		DocumentNumber: documentNumber,
		Description:    description,
		Status:         PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := p.Validate()
	if err != nil {
		return Payment{}, err
	}

	return p, nil
}

func (p Payment) Validate() error {
	if p.ClientID.IsNil() {
		return fmt.Errorf("%w: payment client reference is empty", ErrInvalidArgument)
	}

	if p.SupplierTaxID == "" {
		return fmt.Errorf("%w: payment supplier tax id is empty", ErrInvalidArgument)
	}

	if p.DocumentNumber == "" {
		return fmt.Errorf("%w: payment document number is empty", ErrInvalidArgument)
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount %s is not positive", ErrInvalidArgument, p.Amount)
	}

	if p.IssueDate.IsZero() || p.PaymentDate.IsZero() {
		return fmt.Errorf("%w: payment dates are not set", ErrInvalidArgument)
	}

	if !p.Status.IsValid() {
		return fmt.Errorf("%w: unknown payment status %s", ErrInvalidArgument, p.Status)
	}

	return nil
}
