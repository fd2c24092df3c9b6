package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Supplier is a vendor identified by its CNPJ. Records are either entered
// locally or synthesized from a registry lookup and persisted.
type Supplier struct {
	ID                  uuid.UUID
	TaxID               string // CNPJ, stored digits only.
	LegalName           string
	TradeName           string
	ActivityDescription string
	ActivityCode        string
	Address             string
	City                string
	State               string
	PostalCode          string
	Phone               string
	Email               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RegistryCompany is the normalized shape of one external registry record.
type RegistryCompany struct {
	LegalName           string
	TradeName           string
	ActivityDescription string
	ActivityCode        string
	Address             string
	City                string
	State               string
	PostalCode          string
	Phone               string
	Email               string
}

// NewSupplier builds a supplier from a registry record.
func NewSupplier(taxID string, c RegistryCompany) (Supplier, error) {
	now := time.Now()

	s := Supplier{
		ID:                  uuid.Must(uuid.NewV4()),
		TaxID:               NormalizeTaxID(taxID),
		LegalName:           c.LegalName,
		TradeName:           c.TradeName,
		ActivityDescription: c.ActivityDescription,
		ActivityCode:        c.ActivityCode,
		Address:             c.Address,
		City:                c.City,
		State:               c.State,
		PostalCode:          c.PostalCode,
		Phone:               c.Phone,
		Email:               c.Email,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := s.Validate()
	if err != nil {
		return Supplier{}, err
	}

	return s, nil
}

func (s Supplier) Validate() error {
	if s.TaxID == "" {
		return fmt.Errorf("%w: supplier tax id is empty", ErrInvalidArgument)
	}

	if s.LegalName == "" {
		return fmt.Errorf("%w: supplier legal name is empty", ErrInvalidArgument)
	}

	return nil
}

// ApplyRegistry replaces every registry-sourced field and stamps UpdatedAt.
func (s *Supplier) ApplyRegistry(c RegistryCompany) {
	s.LegalName = c.LegalName
	s.TradeName = c.TradeName
	s.ActivityDescription = c.ActivityDescription
	s.ActivityCode = c.ActivityCode
	s.Address = c.Address
	s.City = c.City
	s.State = c.State
	s.PostalCode = c.PostalCode
	s.Phone = c.Phone
	s.Email = c.Email
	s.UpdatedAt = time.Now()
}

// NormalizeTaxID strips formatting from a CNPJ, keeping digits only.
func NormalizeTaxID(taxID string) string {
	var b strings.Builder
	b.Grow(len(taxID))

	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
