package entity

import (
	"github.com/gofrs/uuid/v5"
)

type SortCol string

func (s SortCol) String() string {
	return string(s)
}

const (
	SortByID          SortCol = "id"
	SortByAmount      SortCol = "amount"
	SortByPaymentDate SortCol = "payment_date"
	SortByCreatedAt   SortCol = "created_at"
	SortByLegalName   SortCol = "legal_name"
	SortByActivity    SortCol = "activity_code"
)

func (s SortCol) IsValid() bool {
	switch s {
	case SortByID, SortByAmount, SortByPaymentDate, SortByCreatedAt, SortByLegalName, SortByActivity:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

type PaymentFilter struct {
	ClientID      *uuid.UUID
	SupplierTaxID *string
	Status        *PaymentStatus
	PaymentFrom   *string
	PaymentTo     *string
	Page          uint64
	Limit         uint64
	SortBy        SortCol
	OrderBy       OrderByCol
}

type SupplierFilter struct {
	TaxID        *string
	State        *string
	ActivityCode *string
	Page         uint64
	Limit        uint64
	SortBy       SortCol
	OrderBy      OrderByCol
}

type RuleFilter struct {
	ActivityCode *string
	Page         uint64
	Limit        uint64
	SortBy       SortCol
	OrderBy      OrderByCol
}
