package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/recuperatax/audit/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type PaymentRepository interface {
	CreatePayment(ctx context.Context, p entity.Payment) error
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	PaymentsByClientAndPeriod(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, updatedAt time.Time) error
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, s entity.Supplier) (entity.Supplier, error)
	Supplier(ctx context.Context, id uuid.UUID) (entity.Supplier, error)
	SupplierByTaxID(ctx context.Context, taxID string) (entity.Supplier, error)
	Suppliers(ctx context.Context, f entity.SupplierFilter) ([]entity.Supplier, int, error)
	UpdateSupplier(ctx context.Context, s entity.Supplier) error
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
	StaleSuppliers(ctx context.Context, updatedBefore time.Time, limit int) ([]entity.Supplier, error)
}

type RuleRepository interface {
	CreateRule(ctx context.Context, rule entity.TaxRetentionRule) error
	Rule(ctx context.Context, id uuid.UUID) (entity.TaxRetentionRule, error)
	RuleByActivityCode(ctx context.Context, code string) (entity.TaxRetentionRule, error)
	Rules(ctx context.Context, f entity.RuleFilter) ([]entity.TaxRetentionRule, int, error)
	UpdateRule(ctx context.Context, rule entity.TaxRetentionRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type RegistryClient interface {
	Company(ctx context.Context, taxID string) (entity.RegistryCompany, error)
}

type Producer interface {
	SendAuditCompleted(ctx context.Context, clientID uuid.UUID, from, to time.Time, payments int, totalRetained decimal.Decimal)
}

type Config struct {
	RegistryRetryBase  time.Duration
	RegistryMaxRetries uint64
	SupplierMaxAge     time.Duration
}

type Service struct {
	payments  PaymentRepository
	suppliers SupplierRepository
	rules     RuleRepository
	registry  RegistryClient
	producer  Producer
	cfg       Config
}

func New(
	payments PaymentRepository,
	suppliers SupplierRepository,
	rules RuleRepository,
	registry RegistryClient,
	producer Producer,
	cfg Config,
) *Service {
	return &Service{
		payments:  payments,
		suppliers: suppliers,
		rules:     rules,
		registry:  registry,
		producer:  producer,
		cfg:       cfg,
	}
}

func (s *Service) CreatePayment(
	ctx context.Context,
	clientID uuid.UUID,
	supplierTaxID string,
	amount decimal.Decimal,
	issueDate, paymentDate time.Time,
	documentNumber, description string,
) (entity.Payment, error) {
	p, err := entity.NewPayment(clientID, supplierTaxID, amount, issueDate, paymentDate, documentNumber, description)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("new payment: %w", err)
	}

	err = s.payments.CreatePayment(ctx, p)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	return p, nil
}

func (s *Service) Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error) {
	p, err := s.payments.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %s: %w", id, err)
	}

	return p, nil
}

func (s *Service) Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error) {
	payments, count, err := s.payments.Payments(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get payments: %w", err)
	}

	return payments, count, nil
}

// UpdatePaymentStatus is the only way a payment's lifecycle status changes.
// It refreshes the last-update timestamp alongside.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown payment status %s", entity.ErrInvalidArgument, status)
	}

	err := s.payments.UpdatePaymentStatus(ctx, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update payment %s status to %s: %w", id, status, err)
	}

	return nil
}

func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	err := s.payments.DeletePayment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete payment %s: %w", id, err)
	}

	return nil
}

func (s *Service) Supplier(ctx context.Context, id uuid.UUID) (entity.Supplier, error) {
	sup, err := s.suppliers.Supplier(ctx, id)
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("get supplier %s: %w", id, err)
	}

	return sup, nil
}

func (s *Service) Suppliers(ctx context.Context, f entity.SupplierFilter) ([]entity.Supplier, int, error) {
	suppliers, count, err := s.suppliers.Suppliers(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get suppliers: %w", err)
	}

	return suppliers, count, nil
}

func (s *Service) CreateSupplier(ctx context.Context, sup entity.Supplier) (entity.Supplier, error) {
	err := sup.Validate()
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("validate supplier: %w", err)
	}

	created, err := s.suppliers.CreateSupplier(ctx, sup)
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("create supplier: %w", err)
	}

	return created, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, sup entity.Supplier) error {
	err := sup.Validate()
	if err != nil {
		return fmt.Errorf("validate supplier: %w", err)
	}

	sup.UpdatedAt = time.Now()

	err = s.suppliers.UpdateSupplier(ctx, sup)
	if err != nil {
		return fmt.Errorf("update supplier %s: %w", sup.ID, err)
	}

	return nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	err := s.suppliers.DeleteSupplier(ctx, id)
	if err != nil {
		return fmt.Errorf("delete supplier %s: %w", id, err)
	}

	return nil
}

func (s *Service) CreateRule(
	ctx context.Context,
	activityCode, description string,
	irrf, pis, cofins, csll, iss, minimumValue decimal.Decimal,
) (entity.TaxRetentionRule, error) {
	rule, err := entity.NewTaxRetentionRule(activityCode, description, irrf, pis, cofins, csll, iss, minimumValue)
	if err != nil {
		return entity.TaxRetentionRule{}, fmt.Errorf("new rule: %w", err)
	}

	err = s.rules.CreateRule(ctx, rule)
	if err != nil {
		return entity.TaxRetentionRule{}, fmt.Errorf("create rule: %w", err)
	}

	return rule, nil
}

func (s *Service) RuleByActivityCode(ctx context.Context, code string) (entity.TaxRetentionRule, error) {
	rule, err := s.rules.RuleByActivityCode(ctx, code)
	if err != nil {
		return entity.TaxRetentionRule{}, fmt.Errorf("get rule for activity code %q: %w", code, err)
	}

	return rule, nil
}

func (s *Service) Rules(ctx context.Context, f entity.RuleFilter) ([]entity.TaxRetentionRule, int, error) {
	rules, count, err := s.rules.Rules(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get rules: %w", err)
	}

	return rules, count, nil
}

func (s *Service) UpdateRule(ctx context.Context, rule entity.TaxRetentionRule) error {
	err := rule.Validate()
	if err != nil {
		return fmt.Errorf("validate rule: %w", err)
	}

	rule.UpdatedAt = time.Now()

	err = s.rules.UpdateRule(ctx, rule)
	if err != nil {
		return fmt.Errorf("update rule %s: %w", rule.ID, err)
	}

	return nil
}

func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	err := s.rules.DeleteRule(ctx, id)
	if err != nil {
		return fmt.Errorf("delete rule %s: %w", id, err)
	}

	return nil
}
