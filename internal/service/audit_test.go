package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/recuperatax/audit/internal/entity"
	"github.com/recuperatax/audit/internal/mocks"
	"github.com/recuperatax/audit/internal/service"
)

type serviceMocks struct {
	payments  *mocks.MockPaymentRepository
	suppliers *mocks.MockSupplierRepository
	rules     *mocks.MockRuleRepository
	registry  *mocks.MockRegistryClient
	producer  *mocks.MockProducer
}

func newService(t *testing.T) (*service.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		payments:  mocks.NewMockPaymentRepository(ctrl),
		suppliers: mocks.NewMockSupplierRepository(ctrl),
		rules:     mocks.NewMockRuleRepository(ctrl),
		registry:  mocks.NewMockRegistryClient(ctrl),
		producer:  mocks.NewMockProducer(ctrl),
	}

	s := service.New(m.payments, m.suppliers, m.rules, m.registry, m.producer, service.Config{
		RegistryRetryBase:  time.Millisecond,
		RegistryMaxRetries: 2,
		SupplierMaxAge:     180 * 24 * time.Hour,
	})

	return s, m
}

func testPayment(clientID uuid.UUID, taxID, amount string) entity.Payment {
	return entity.Payment{
		ID:             uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		SupplierTaxID:  taxID,
		Amount:         decimal.RequireFromString(amount),
		IssueDate:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		PaymentDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DocumentNumber: "NF-1",
		Status:         entity.PaymentStatusPaid,
	}
}

func testRule() entity.TaxRetentionRule {
	return entity.TaxRetentionRule{
		ID:           uuid.Must(uuid.NewV4()),
		ActivityCode: "6201500",
		Description:  "software development",
		IRRFRate:     decimal.RequireFromString("1.5"),
		PISRate:      decimal.RequireFromString("0.65"),
		COFINSRate:   decimal.RequireFromString("3"),
		CSLLRate:     decimal.RequireFromString("1"),
		ISSRate:      decimal.RequireFromString("5"),
		MinimumValue: decimal.RequireFromString("5000"),
	}
}

func TestService_AuditPayments(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	supplier := entity.Supplier{
		ID:           uuid.Must(uuid.NewV4()),
		TaxID:        "12345678000195",
		LegalName:    "ACME LTDA",
		ActivityCode: "6201500",
	}

	payments := []entity.Payment{
		testPayment(clientID, supplier.TaxID, "10000"),
		testPayment(clientID, supplier.TaxID, "4999"),
	}

	rule := testRule()

	m.payments.EXPECT().PaymentsByClientAndPeriod(gomock.Any(), clientID, from, to).Return(payments, nil)
	// Both payments share the supplier: one lookup, one rule fetch.
	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), supplier.TaxID).Return(supplier, nil)
	m.rules.EXPECT().RuleByActivityCode(gomock.Any(), rule.ActivityCode).Return(rule, nil)
	m.producer.EXPECT().SendAuditCompleted(gomock.Any(), clientID, from, to, 2, gomock.Any())

	results, err := s.AuditPayments(context.Background(), clientID, from, to)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, entity.AuditResultStatusOK, results[0].Status)
	require.Equal(t, supplier, results[0].Supplier)
	require.True(t, results[0].Retention.Total.Equal(decimal.RequireFromString("1115")),
		"total = %s", results[0].Retention.Total)

	// Second payment is below the rule minimum.
	require.Equal(t, entity.AuditResultStatusOK, results[1].Status)
	require.True(t, results[1].Retention.Total.IsZero())
}

func TestService_AuditPayments_NoRuleConfigured(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	supplier := entity.Supplier{
		ID:           uuid.Must(uuid.NewV4()),
		TaxID:        "12345678000195",
		LegalName:    "ACME LTDA",
		ActivityCode: "9999999",
	}

	payments := []entity.Payment{testPayment(clientID, supplier.TaxID, "1000000")}

	m.payments.EXPECT().PaymentsByClientAndPeriod(gomock.Any(), clientID, from, to).Return(payments, nil)
	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), supplier.TaxID).Return(supplier, nil)
	m.rules.EXPECT().RuleByActivityCode(gomock.Any(), supplier.ActivityCode).
		Return(entity.TaxRetentionRule{}, entity.ErrNotFound)
	m.producer.EXPECT().SendAuditCompleted(gomock.Any(), clientID, from, to, 1, gomock.Any())

	results, err := s.AuditPayments(context.Background(), clientID, from, to)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, entity.AuditResultStatusOK, results[0].Status)
	require.True(t, results[0].Retention.Total.IsZero())
}

func TestService_AuditPayments_SupplierNotRegistered(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	known := entity.Supplier{
		ID:           uuid.Must(uuid.NewV4()),
		TaxID:        "12345678000195",
		LegalName:    "ACME LTDA",
		ActivityCode: "6201500",
	}

	const unknownTaxID = "98765432000100"

	payments := []entity.Payment{
		testPayment(clientID, unknownTaxID, "10000"),
		testPayment(clientID, known.TaxID, "10000"),
		testPayment(clientID, unknownTaxID, "7000"),
	}

	rule := testRule()

	m.payments.EXPECT().PaymentsByClientAndPeriod(gomock.Any(), clientID, from, to).Return(payments, nil)

	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), unknownTaxID).
		Return(entity.Supplier{}, entity.ErrNotFound)
	// Terminal registry miss: no retry, one call for two payments.
	m.registry.EXPECT().Company(gomock.Any(), unknownTaxID).
		Return(entity.RegistryCompany{}, entity.ErrSupplierNotRegistered)

	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), known.TaxID).Return(known, nil)
	m.rules.EXPECT().RuleByActivityCode(gomock.Any(), rule.ActivityCode).Return(rule, nil)
	m.producer.EXPECT().SendAuditCompleted(gomock.Any(), clientID, from, to, 3, gomock.Any())

	results, err := s.AuditPayments(context.Background(), clientID, from, to)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, entity.AuditResultStatusSupplierNotFound, results[0].Status)
	require.True(t, results[0].Retention.Total.IsZero())
	require.NotEmpty(t, results[0].Detail)

	// The sibling payment is still audited.
	require.Equal(t, entity.AuditResultStatusOK, results[1].Status)
	require.True(t, results[1].Retention.Total.Equal(decimal.RequireFromString("1115")))

	require.Equal(t, entity.AuditResultStatusSupplierNotFound, results[2].Status)
}

func TestService_AuditPayments_RegistryThrottledAborts(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	const taxID = "98765432000100"

	payments := []entity.Payment{testPayment(clientID, taxID, "10000")}

	m.payments.EXPECT().PaymentsByClientAndPeriod(gomock.Any(), clientID, from, to).Return(payments, nil)
	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), taxID).Return(entity.Supplier{}, entity.ErrNotFound)
	// Two retries configured: three attempts, all throttled.
	m.registry.EXPECT().Company(gomock.Any(), taxID).
		Return(entity.RegistryCompany{}, entity.ErrRegistryThrottled).Times(3)

	_, err := s.AuditPayments(context.Background(), clientID, from, to)
	require.ErrorIs(t, err, entity.ErrRegistryThrottled)
}

func TestService_ResolveSupplier_CreatesFromRegistry(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	const taxID = "12345678000195"

	company := entity.RegistryCompany{
		LegalName:    "ACME LTDA",
		TradeName:    "ACME",
		ActivityCode: "6201500",
		City:         "São Paulo",
		State:        "SP",
	}

	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), taxID).Return(entity.Supplier{}, entity.ErrNotFound)
	m.registry.EXPECT().Company(gomock.Any(), taxID).Return(company, nil)
	m.suppliers.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sup entity.Supplier) (entity.Supplier, error) {
			require.Equal(t, taxID, sup.TaxID)
			require.Equal(t, company.LegalName, sup.LegalName)
			require.Equal(t, company.ActivityCode, sup.ActivityCode)

			return sup, nil
		})

	got, err := s.ResolveSupplier(context.Background(), "12.345.678/0001-95")
	require.NoError(t, err)
	require.Equal(t, taxID, got.TaxID)
	require.Equal(t, company.LegalName, got.LegalName)
}

func TestService_ResolveSupplier_KnownSupplierIsNotRecreated(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	supplier := entity.Supplier{
		ID:        uuid.Must(uuid.NewV4()),
		TaxID:     "12345678000195",
		LegalName: "ACME LTDA",
	}

	// Only the local lookup runs: no registry call, no create.
	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), supplier.TaxID).Return(supplier, nil)

	got, err := s.ResolveSupplier(context.Background(), supplier.TaxID)
	require.NoError(t, err)
	require.Equal(t, supplier, got)
}

func TestService_ResolveSupplier_RetriesThrottled(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	const taxID = "12345678000195"

	company := entity.RegistryCompany{LegalName: "ACME LTDA"}

	m.suppliers.EXPECT().SupplierByTaxID(gomock.Any(), taxID).Return(entity.Supplier{}, entity.ErrNotFound)

	gomock.InOrder(
		m.registry.EXPECT().Company(gomock.Any(), taxID).
			Return(entity.RegistryCompany{}, entity.ErrRegistryThrottled).Times(2),
		m.registry.EXPECT().Company(gomock.Any(), taxID).Return(company, nil),
	)

	m.suppliers.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sup entity.Supplier) (entity.Supplier, error) {
			return sup, nil
		})

	got, err := s.ResolveSupplier(context.Background(), taxID)
	require.NoError(t, err)
	require.Equal(t, company.LegalName, got.LegalName)
}

func TestService_RefreshStaleSuppliers(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	stale := entity.Supplier{
		ID:        uuid.Must(uuid.NewV4()),
		TaxID:     "12345678000195",
		LegalName: "OLD NAME LTDA",
		UpdatedAt: time.Now().Add(-365 * 24 * time.Hour),
	}

	company := entity.RegistryCompany{
		LegalName:    "NEW NAME LTDA",
		ActivityCode: "6201500",
	}

	m.suppliers.EXPECT().StaleSuppliers(gomock.Any(), gomock.Any(), 50).Return([]entity.Supplier{stale}, nil)
	m.registry.EXPECT().Company(gomock.Any(), stale.TaxID).Return(company, nil)
	m.suppliers.EXPECT().UpdateSupplier(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sup entity.Supplier) error {
			require.Equal(t, stale.ID, sup.ID)
			require.Equal(t, company.LegalName, sup.LegalName)
			require.True(t, sup.UpdatedAt.After(stale.UpdatedAt))

			return nil
		})

	err := s.RefreshStaleSuppliers(context.Background())
	require.NoError(t, err)
}

func TestService_RefreshStaleSuppliers_SkipsUnregistered(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	stale := entity.Supplier{
		ID:        uuid.Must(uuid.NewV4()),
		TaxID:     "12345678000195",
		LegalName: "GONE LTDA",
	}

	m.suppliers.EXPECT().StaleSuppliers(gomock.Any(), gomock.Any(), 50).Return([]entity.Supplier{stale}, nil)
	m.registry.EXPECT().Company(gomock.Any(), stale.TaxID).
		Return(entity.RegistryCompany{}, entity.ErrSupplierNotRegistered)

	err := s.RefreshStaleSuppliers(context.Background())
	require.NoError(t, err)
}

func TestService_UpdatePaymentStatus(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	id := uuid.Must(uuid.NewV4())

	m.payments.EXPECT().UpdatePaymentStatus(gomock.Any(), id, entity.PaymentStatusPaid, gomock.Any()).Return(nil)

	err := s.UpdatePaymentStatus(context.Background(), id, entity.PaymentStatusPaid)
	require.NoError(t, err)

	err = s.UpdatePaymentStatus(context.Background(), id, entity.PaymentStatus("UNKNOWN"))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_CreatePayment_InvalidAmount(t *testing.T) {
	t.Parallel()

	s, _ := newService(t)

	_, err := s.CreatePayment(context.Background(), uuid.Must(uuid.NewV4()), "12345678000195",
		decimal.Zero, time.Now(), time.Now(), "NF-1", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_AuditPayments_RepositoryError(t *testing.T) {
	t.Parallel()

	s, m := newService(t)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	wantErr := errors.New("connection refused")

	m.payments.EXPECT().PaymentsByClientAndPeriod(gomock.Any(), clientID, from, to).Return(nil, wantErr)

	_, err := s.AuditPayments(context.Background(), clientID, from, to)
	require.ErrorIs(t, err, wantErr)
}
