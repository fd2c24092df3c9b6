package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/recuperatax/audit/internal/entity"
)

const registryRetryCap = 5 * time.Second

// AuditPayments audits every payment of a client inside [from, to]: it
// resolves each payment's supplier, looks up the retention rule for the
// supplier's activity code and computes the withholding breakdown.
//
// Payments are processed sequentially in payment-date order. A supplier the
// registry does not know does not abort the batch: that payment gets a
// SUPPLIER_NOT_FOUND row and its siblings are still audited. Transient
// registry failures that survive the bounded retry abort the whole run, since
// they would poison every remaining row as well. Suppliers and rules are
// resolved once per distinct key per run.
func (s *Service) AuditPayments(
	ctx context.Context,
	clientID uuid.UUID,
	from, to time.Time,
) ([]entity.AuditResult, error) {
	payments, err := s.payments.PaymentsByClientAndPeriod(ctx, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get payments for client %s: %w", clientID, err)
	}

	var (
		suppliers = make(map[string]entity.Supplier)
		missing   = make(map[string]string) // tax ID -> resolution error
		rules     = make(map[string]*entity.TaxRetentionRule)
	)

	results := make([]entity.AuditResult, 0, len(payments))

	for _, p := range payments {
		if detail, ok := missing[p.SupplierTaxID]; ok {
			results = append(results, supplierNotFoundResult(p, detail))
			continue
		}

		supplier, ok := suppliers[p.SupplierTaxID]
		if !ok {
			supplier, err = s.ResolveSupplier(ctx, p.SupplierTaxID)
			if err != nil {
				if errors.Is(err, entity.ErrSupplierNotRegistered) {
					missing[p.SupplierTaxID] = err.Error()
					results = append(results, supplierNotFoundResult(p, err.Error()))

					continue
				}

				return nil, fmt.Errorf("resolve supplier %q: %w", p.SupplierTaxID, err)
			}

			suppliers[p.SupplierTaxID] = supplier
		}

		rule, ok := rules[supplier.ActivityCode]
		if !ok {
			rule, err = s.ruleForActivityCode(ctx, supplier.ActivityCode)
			if err != nil {
				return nil, err
			}

			rules[supplier.ActivityCode] = rule
		}

		results = append(results, entity.AuditResult{
			Payment:   p,
			Supplier:  supplier,
			Retention: entity.CalculateRetention(p.Amount, rule),
			Status:    entity.AuditResultStatusOK,
		})
	}

	totalRetained := decimal.Zero
	for _, r := range results {
		totalRetained = totalRetained.Add(r.Retention.Total)
	}

	s.producer.SendAuditCompleted(ctx, clientID, from, to, len(results), totalRetained)

	slog.InfoContext(ctx, "audit completed",
		"client_id", clientID,
		"payments", len(results),
		"total_retained", totalRetained.String(),
	)

	return results, nil
}

// ruleForActivityCode returns nil when no rule is configured for the code.
// The calculator treats a nil rule as "no withholding".
func (s *Service) ruleForActivityCode(ctx context.Context, code string) (*entity.TaxRetentionRule, error) {
	if code == "" {
		return nil, nil
	}

	rule, err := s.rules.RuleByActivityCode(ctx, code)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get rule for activity code %q: %w", code, err)
	}

	return &rule, nil
}

func supplierNotFoundResult(p entity.Payment, detail string) entity.AuditResult {
	return entity.AuditResult{
		Payment:   p,
		Retention: entity.ZeroRetention(),
		Status:    entity.AuditResultStatusSupplierNotFound,
		Detail:    detail,
	}
}

// ResolveSupplier returns the supplier for a tax ID, fetching it from the
// external registry and persisting it when it is not known locally. A known
// supplier is returned unchanged. Callers should expect a persistence write
// as a side effect of the first resolution of a new tax ID.
func (s *Service) ResolveSupplier(ctx context.Context, taxID string) (entity.Supplier, error) {
	taxID = entity.NormalizeTaxID(taxID)

	supplier, err := s.suppliers.SupplierByTaxID(ctx, taxID)
	if err == nil {
		return supplier, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Supplier{}, fmt.Errorf("get supplier by tax id %q: %w", taxID, err)
	}

	company, err := s.registryCompany(ctx, taxID)
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("registry lookup for %q: %w", taxID, err)
	}

	supplier, err = entity.NewSupplier(taxID, company)
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("new supplier from registry data: %w", err)
	}

	created, err := s.suppliers.CreateSupplier(ctx, supplier)
	if err != nil {
		return entity.Supplier{}, fmt.Errorf("create supplier %q: %w", taxID, err)
	}

	slog.InfoContext(ctx, "supplier created from registry", "tax_id", taxID, "legal_name", created.LegalName)

	return created, nil
}

// registryCompany wraps the registry call in a bounded exponential backoff.
// Only the throttled/transient error class is retried; an unregistered tax ID
// is terminal and returns immediately.
func (s *Service) registryCompany(ctx context.Context, taxID string) (entity.RegistryCompany, error) {
	var company entity.RegistryCompany

	backoff := retry.WithCappedDuration(registryRetryCap, retry.NewExponential(s.cfg.RegistryRetryBase))
	backoff = retry.WithMaxRetries(s.cfg.RegistryMaxRetries, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := s.registry.Company(ctx, taxID)
		if err != nil {
			if errors.Is(err, entity.ErrRegistryThrottled) {
				return retry.RetryableError(err)
			}

			return err
		}

		company = c

		return nil
	})
	if err != nil {
		return entity.RegistryCompany{}, err
	}

	return company, nil
}

// RefreshStaleSuppliers re-reads registry data for suppliers that have not
// been refreshed within the configured age and applies a full-field update.
// Runs from the background job runner.
func (s *Service) RefreshStaleSuppliers(ctx context.Context) error {
	const batchSize = 50

	cutoff := time.Now().Add(-s.cfg.SupplierMaxAge)

	stale, err := s.suppliers.StaleSuppliers(ctx, cutoff, batchSize)
	if err != nil {
		return fmt.Errorf("get stale suppliers: %w", err)
	}

	var errs []error

	for _, sup := range stale {
		company, err := s.registryCompany(ctx, sup.TaxID)
		if err != nil {
			if errors.Is(err, entity.ErrSupplierNotRegistered) {
				// The registry dropped the record; the local copy stays.
				slog.WarnContext(ctx, "supplier no longer registered", "tax_id", sup.TaxID)
				continue
			}

			errs = append(errs, fmt.Errorf("refresh supplier %q: %w", sup.TaxID, err))

			continue
		}

		sup.ApplyRegistry(company)

		err = s.suppliers.UpdateSupplier(ctx, sup)
		if err != nil {
			errs = append(errs, fmt.Errorf("update supplier %q: %w", sup.TaxID, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
