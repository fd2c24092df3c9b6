package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/recuperatax/audit/internal/entity"
)

// @title Tax Retention Audit API
// @version 1.0
// @description API for auditing client payments against tax retention rules
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

const dateOnly = "2006-01-02"

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	AuditPayments(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.AuditResult, error)
	ResolveSupplier(ctx context.Context, taxID string) (entity.Supplier, error)

	CreatePayment(ctx context.Context, clientID uuid.UUID, supplierTaxID string, amount decimal.Decimal,
		issueDate, paymentDate time.Time, documentNumber, description string) (entity.Payment, error)
	Payment(ctx context.Context, id uuid.UUID) (entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
	DeletePayment(ctx context.Context, id uuid.UUID) error

	Supplier(ctx context.Context, id uuid.UUID) (entity.Supplier, error)
	Suppliers(ctx context.Context, f entity.SupplierFilter) ([]entity.Supplier, int, error)
	UpdateSupplier(ctx context.Context, s entity.Supplier) error
	DeleteSupplier(ctx context.Context, id uuid.UUID) error

	CreateRule(ctx context.Context, activityCode, description string,
		irrf, pis, cofins, csll, iss, minimumValue decimal.Decimal) (entity.TaxRetentionRule, error)
	RuleByActivityCode(ctx context.Context, code string) (entity.TaxRetentionRule, error)
	Rules(ctx context.Context, f entity.RuleFilter) ([]entity.TaxRetentionRule, int, error)
	UpdateRule(ctx context.Context, rule entity.TaxRetentionRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type CreateAuditRequest struct {
	ClientID  uuid.UUID `json:"clientId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
}

type CreateAuditResponse struct {
	Results []AuditResultEntity `json:"results"`
}

type AuditResultEntity struct {
	Payment   PaymentEntity   `json:"payment"`
	Supplier  *SupplierEntity `json:"supplier,omitempty"`
	Retencoes RetentionEntity `json:"retencoes"`
	Status    string          `json:"status"`
	Detail    string          `json:"detail,omitempty"`
}

type RetentionEntity struct {
	IRRF   string `json:"irrf"`
	PIS    string `json:"pis"`
	COFINS string `json:"cofins"`
	CSLL   string `json:"csll"`
	ISS    string `json:"iss"`
	Total  string `json:"total"`
}

// CreateAudit audits every payment of a client inside a period
// @Summary Audit client payments
// @Description Resolves the supplier of each payment in the period and computes the tax retention breakdown
// @Tags audits
// @Accept json
// @Produce json
// @Param CreateAuditRequest body CreateAuditRequest true "Client and period to audit"
// @Success 200 {object} CreateAuditResponse
// @Failure 400 {object} ErrorResponse "Invalid body or period"
// @Failure 500 {object} ErrorResponse "Failed to audit payments"
// @Router /audits [post]
func (h *Handler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAuditRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	if req.ClientID.IsNil() {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "clientId is required")
		return
	}

	from, err := time.Parse(dateOnly, req.StartDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid startDate, expected YYYY-MM-DD")
		return
	}

	to, err := time.Parse(dateOnly, req.EndDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid endDate, expected YYYY-MM-DD")
		return
	}

	if to.Before(from) {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "endDate is before startDate")
		return
	}

	results, err := h.s.AuditPayments(ctx, req.ClientID, from, to)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to audit payments")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CreateAuditResponse{Results: auditResultsToAPI(results)})
}

type CreatePaymentRequest struct {
	ClientID       uuid.UUID       `json:"clientId"`
	SupplierTaxID  string          `json:"supplierTaxId"`
	Amount         decimal.Decimal `json:"amount"`
	IssueDate      string          `json:"issueDate"`
	PaymentDate    string          `json:"paymentDate"`
	DocumentNumber string          `json:"documentNumber"`
	Description    string          `json:"description"`
}

type PaymentEntity struct {
	ID             uuid.UUID `json:"id"`
	ClientID       uuid.UUID `json:"clientId"`
	SupplierTaxID  string    `json:"supplierTaxId"`
	Amount         string    `json:"amount"`
	IssueDate      string    `json:"issueDate"`
	PaymentDate    string    `json:"paymentDate"`
	DocumentNumber string    `json:"documentNumber"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreatePayment registers an accounts-payable disbursement
// @Summary Create payment
// @Tags payments
// @Accept json
// @Produce json
// @Param CreatePaymentRequest body CreatePaymentRequest true "Payment creation request"
// @Success 201 {object} PaymentEntity
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create payment"
// @Router /payments [post]
// @Security ApiKeyAuth
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	issueDate, err := time.Parse(dateOnly, req.IssueDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid issueDate, expected YYYY-MM-DD")
		return
	}

	paymentDate, err := time.Parse(dateOnly, req.PaymentDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid paymentDate, expected YYYY-MM-DD")
		return
	}

	p, err := h.s.CreatePayment(ctx, req.ClientID, req.SupplierTaxID, req.Amount,
		issueDate, paymentDate, req.DocumentNumber, req.Description)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid payment")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to create payment")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, paymentToAPI(p))
}

// Payment returns one payment by ID
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} PaymentEntity
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to get payment"
// @Router /payments/{id} [get]
func (h *Handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid payment id")
		return
	}

	p, err := h.s.Payment(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "payment not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get payment")

		return
	}

	SendJSON(ctx, w, http.StatusOK, paymentToAPI(p))
}

type PaymentsResponse struct {
	Payments   []PaymentEntity `json:"payments"`
	TotalCount int             `json:"totalCount"`
}

// Payments lists payments with optional filters
// @Summary List payments
// @Tags payments
// @Produce json
// @Param clientId query string false "Filter by client ID"
// @Param supplierTaxId query string false "Filter by supplier tax ID"
// @Param status query string false "Filter by payment status"
// @Param paymentFrom query string false "Payment date lower bound (YYYY-MM-DD)"
// @Param paymentTo query string false "Payment date upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (id, amount, payment_date, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} PaymentsResponse
// @Failure 500 {object} ErrorResponse "Failed to get payments"
// @Router /payments [get]
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payments, totalCount, err := h.s.Payments(ctx, parsePaymentFilter(r.URL.Query()))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get payments")
		return
	}

	SendJSON(ctx, w, http.StatusOK, PaymentsResponse{
		Payments:   paymentsToAPI(payments),
		TotalCount: totalCount,
	})
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentStatus changes a payment's lifecycle status
// @Summary Update payment status
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param UpdatePaymentStatusRequest body UpdatePaymentStatusRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid ID or body"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 422 {object} ErrorResponse "Unknown status"
// @Failure 500 {object} ErrorResponse "Failed to update payment"
// @Router /payments/{id}/status [patch]
// @Security ApiKeyAuth
func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid payment id")
		return
	}

	var req UpdatePaymentStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	err = h.s.UpdatePaymentStatus(ctx, id, entity.PaymentStatus(req.Status))

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "unknown payment status")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "payment not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to update payment")
	}
}

// DeletePayment removes a payment
// @Summary Delete payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 204 "Payment deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Failed to delete payment"
// @Router /payments/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid payment id")
		return
	}

	err = h.s.DeletePayment(ctx, id)

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "payment not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to delete payment")
	}
}

type SupplierEntity struct {
	ID                  uuid.UUID `json:"id"`
	TaxID               string    `json:"taxId"`
	LegalName           string    `json:"legalName"`
	TradeName           string    `json:"tradeName,omitempty"`
	ActivityDescription string    `json:"activityDescription,omitempty"`
	ActivityCode        string    `json:"activityCode,omitempty"`
	Address             string    `json:"address,omitempty"`
	City                string    `json:"city,omitempty"`
	State               string    `json:"state,omitempty"`
	PostalCode          string    `json:"postalCode,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Email               string    `json:"email,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type ResolveSupplierRequest struct {
	TaxID string `json:"taxId"`
}

// ResolveSupplier returns the supplier for a tax ID, fetching it from the
// external registry when unknown locally
// @Summary Resolve supplier by tax ID
// @Tags suppliers
// @Accept json
// @Produce json
// @Param ResolveSupplierRequest body ResolveSupplierRequest true "Tax ID to resolve"
// @Success 200 {object} SupplierEntity
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 404 {object} ErrorResponse "Tax ID not registered"
// @Failure 500 {object} ErrorResponse "Failed to resolve supplier"
// @Router /suppliers/resolve [post]
// @Security ApiKeyAuth
func (h *Handler) ResolveSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResolveSupplierRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	if req.TaxID == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "taxId is required")
		return
	}

	s, err := h.s.ResolveSupplier(ctx, req.TaxID)
	if err != nil {
		if errors.Is(err, entity.ErrSupplierNotRegistered) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "tax id is not registered")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to resolve supplier")

		return
	}

	SendJSON(ctx, w, http.StatusOK, supplierToAPI(s))
}

// Supplier returns one supplier by ID
// @Summary Get supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SupplierEntity
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse "Failed to get supplier"
// @Router /suppliers/{id} [get]
func (h *Handler) Supplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid supplier id")
		return
	}

	s, err := h.s.Supplier(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "supplier not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get supplier")

		return
	}

	SendJSON(ctx, w, http.StatusOK, supplierToAPI(s))
}

type SuppliersResponse struct {
	Suppliers  []SupplierEntity `json:"suppliers"`
	TotalCount int              `json:"totalCount"`
}

// Suppliers lists suppliers with optional filters
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Param taxId query string false "Filter by tax ID"
// @Param state query string false "Filter by state"
// @Param activityCode query string false "Filter by activity code"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (legal_name, activity_code, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} SuppliersResponse
// @Failure 500 {object} ErrorResponse "Failed to get suppliers"
// @Router /suppliers [get]
func (h *Handler) Suppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suppliers, totalCount, err := h.s.Suppliers(ctx, parseSupplierFilter(r.URL.Query()))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get suppliers")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SuppliersResponse{
		Suppliers:  suppliersToAPI(suppliers),
		TotalCount: totalCount,
	})
}

type UpdateSupplierRequest struct {
	LegalName           string `json:"legalName"`
	TradeName           string `json:"tradeName"`
	ActivityDescription string `json:"activityDescription"`
	ActivityCode        string `json:"activityCode"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	PostalCode          string `json:"postalCode"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
}

// UpdateSupplier replaces a supplier's registry-sourced fields
// @Summary Update supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param UpdateSupplierRequest body UpdateSupplierRequest true "Supplier fields"
// @Success 204 "Supplier updated"
// @Failure 400 {object} ErrorResponse "Invalid ID or body"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to update supplier"
// @Router /suppliers/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid supplier id")
		return
	}

	var req UpdateSupplierRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	s, err := h.s.Supplier(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "supplier not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get supplier")

		return
	}

	s.ApplyRegistry(entity.RegistryCompany{
		LegalName:           req.LegalName,
		TradeName:           req.TradeName,
		ActivityDescription: req.ActivityDescription,
		ActivityCode:        req.ActivityCode,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		PostalCode:          req.PostalCode,
		Phone:               req.Phone,
		Email:               req.Email,
	})

	err = h.s.UpdateSupplier(ctx, s)

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid supplier")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "supplier not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to update supplier")
	}
}

// DeleteSupplier removes a supplier
// @Summary Delete supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 204 "Supplier deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse "Failed to delete supplier"
// @Router /suppliers/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid supplier id")
		return
	}

	err = h.s.DeleteSupplier(ctx, id)

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "supplier not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to delete supplier")
	}
}

type CreateRuleRequest struct {
	ActivityCode string          `json:"activityCode"`
	Description  string          `json:"description"`
	IRRF         decimal.Decimal `json:"irrf"`
	PIS          decimal.Decimal `json:"pis"`
	COFINS       decimal.Decimal `json:"cofins"`
	CSLL         decimal.Decimal `json:"csll"`
	ISS          decimal.Decimal `json:"iss"`
	MinimumValue decimal.Decimal `json:"minimumValue"`
}

type RuleEntity struct {
	ID           uuid.UUID `json:"id"`
	ActivityCode string    `json:"activityCode"`
	Description  string    `json:"description"`
	IRRF         string    `json:"irrf"`
	PIS          string    `json:"pis"`
	COFINS       string    `json:"cofins"`
	CSLL         string    `json:"csll"`
	ISS          string    `json:"iss"`
	MinimumValue string    `json:"minimumValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateRule configures withholding rates for an activity code
// @Summary Create retention rule
// @Tags rules
// @Accept json
// @Produce json
// @Param CreateRuleRequest body CreateRuleRequest true "Rule creation request"
// @Success 201 {object} RuleEntity
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to create rule"
// @Router /rules [post]
// @Security ApiKeyAuth
func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateRuleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	rule, err := h.s.CreateRule(ctx, req.ActivityCode, req.Description,
		req.IRRF, req.PIS, req.COFINS, req.CSLL, req.ISS, req.MinimumValue)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid rule")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to create rule")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, ruleToAPI(rule))
}

// Rule returns the retention rule for an activity code
// @Summary Get retention rule by activity code
// @Tags rules
// @Produce json
// @Param activity_code path string true "Activity code (CNAE)"
// @Success 200 {object} RuleEntity
// @Failure 404 {object} ErrorResponse "No rule for activity code"
// @Failure 500 {object} ErrorResponse "Failed to get rule"
// @Router /rules/{activity_code} [get]
func (h *Handler) Rule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := chi.URLParam(r, "activity_code")

	rule, err := h.s.RuleByActivityCode(ctx, code)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "no rule for activity code")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get rule")

		return
	}

	SendJSON(ctx, w, http.StatusOK, ruleToAPI(rule))
}

type RulesResponse struct {
	Rules      []RuleEntity `json:"rules"`
	TotalCount int          `json:"totalCount"`
}

// Rules lists retention rules with optional filters
// @Summary List retention rules
// @Tags rules
// @Produce json
// @Param activityCode query string false "Filter by activity code"
// @Param limit query int false "Page size (default 10)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (activity_code, created_at)"
// @Param orderBy query string false "Sort order (asc, desc)"
// @Success 200 {object} RulesResponse
// @Failure 500 {object} ErrorResponse "Failed to get rules"
// @Router /rules [get]
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rules, totalCount, err := h.s.Rules(ctx, parseRuleFilter(r.URL.Query()))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to get rules")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RulesResponse{
		Rules:      rulesToAPI(rules),
		TotalCount: totalCount,
	})
}

type UpdateRuleRequest struct {
	ActivityCode string          `json:"activityCode"`
	Description  string          `json:"description"`
	IRRF         decimal.Decimal `json:"irrf"`
	PIS          decimal.Decimal `json:"pis"`
	COFINS       decimal.Decimal `json:"cofins"`
	CSLL         decimal.Decimal `json:"csll"`
	ISS          decimal.Decimal `json:"iss"`
	MinimumValue decimal.Decimal `json:"minimumValue"`
}

// UpdateRule replaces a retention rule's rates
// @Summary Update retention rule
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param UpdateRuleRequest body UpdateRuleRequest true "Rule fields"
// @Success 204 "Rule updated"
// @Failure 400 {object} ErrorResponse "Invalid ID or body"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Failed to update rule"
// @Router /rules/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid rule id")
		return
	}

	var req UpdateRuleRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid JSON")
		return
	}

	err = h.s.UpdateRule(ctx, entity.TaxRetentionRule{
		ID:           id,
		ActivityCode: req.ActivityCode,
		Description:  req.Description,
		IRRFRate:     req.IRRF,
		PISRate:      req.PIS,
		COFINSRate:   req.COFINS,
		CSLLRate:     req.CSLL,
		ISSRate:      req.ISS,
		MinimumValue: req.MinimumValue,
	})

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "invalid rule")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "rule not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to update rule")
	}
}

// DeleteRule removes a retention rule
// @Summary Delete retention rule
// @Tags rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 204 "Rule deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 500 {object} ErrorResponse "Failed to delete rule"
// @Router /rules/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid rule id")
		return
	}

	err = h.s.DeleteRule(ctx, id)

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "rule not found")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "failed to delete rule")
	}
}

func paymentToAPI(p entity.Payment) PaymentEntity {
	return PaymentEntity{
		ID:             p.ID,
		ClientID:       p.ClientID,
		SupplierTaxID:  p.SupplierTaxID,
		Amount:         p.Amount.String(),
		IssueDate:      p.IssueDate.Format(dateOnly),
		PaymentDate:    p.PaymentDate.Format(dateOnly),
		DocumentNumber: p.DocumentNumber,
		Description:    p.Description,
		Status:         p.Status.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func paymentsToAPI(payments []entity.Payment) []PaymentEntity {
	out := make([]PaymentEntity, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentToAPI(p))
	}

	return out
}

func supplierToAPI(s entity.Supplier) SupplierEntity {
	return SupplierEntity{
		ID:                  s.ID,
		TaxID:               s.TaxID,
		LegalName:           s.LegalName,
		TradeName:           s.TradeName,
		ActivityDescription: s.ActivityDescription,
		ActivityCode:        s.ActivityCode,
		Address:             s.Address,
		City:                s.City,
		State:               s.State,
		PostalCode:          s.PostalCode,
		Phone:               s.Phone,
		Email:               s.Email,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func suppliersToAPI(suppliers []entity.Supplier) []SupplierEntity {
	out := make([]SupplierEntity, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierToAPI(s))
	}

	return out
}

func ruleToAPI(r entity.TaxRetentionRule) RuleEntity {
	return RuleEntity{
		ID:           r.ID,
		ActivityCode: r.ActivityCode,
		Description:  r.Description,
		IRRF:         r.IRRFRate.String(),
		PIS:          r.PISRate.String(),
		COFINS:       r.COFINSRate.String(),
		CSLL:         r.CSLLRate.String(),
		ISS:          r.ISSRate.String(),
		MinimumValue: r.MinimumValue.String(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func rulesToAPI(rules []entity.TaxRetentionRule) []RuleEntity {
	out := make([]RuleEntity, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleToAPI(r))
	}

	return out
}

func retentionToAPI(r entity.Retention) RetentionEntity {
	return RetentionEntity{
		IRRF:   r.IRRF.String(),
		PIS:    r.PIS.String(),
		COFINS: r.COFINS.String(),
		CSLL:   r.CSLL.String(),
		ISS:    r.ISS.String(),
		Total:  r.Total.String(),
	}
}

func auditResultsToAPI(results []entity.AuditResult) []AuditResultEntity {
	out := make([]AuditResultEntity, 0, len(results))

	for _, res := range results {
		e := AuditResultEntity{
			Payment:   paymentToAPI(res.Payment),
			Retencoes: retentionToAPI(res.Retention),
			Status:    res.Status.String(),
			Detail:    res.Detail,
		}

		if res.Status == entity.AuditResultStatusOK {
			s := supplierToAPI(res.Supplier)
			e.Supplier = &s
		}

		out = append(out, e)
	}

	return out
}

func parsePaymentFilter(url url.Values) entity.PaymentFilter {
	f := entity.PaymentFilter{}

	f.SortBy, f.OrderBy = parseSort(url)
	f.Page, f.Limit = parsePagination(url)

	if v := url.Get("clientId"); v != "" {
		if id, err := uuid.FromString(v); err == nil {
			f.ClientID = &id
		}
	}

	if v := url.Get("supplierTaxId"); v != "" {
		taxID := entity.NormalizeTaxID(v)
		f.SupplierTaxID = &taxID
	}

	if v := url.Get("status"); v != "" {
		status := entity.PaymentStatus(v)
		f.Status = &status
	}

	if v := url.Get("paymentFrom"); v != "" {
		f.PaymentFrom = &v
	}

	if v := url.Get("paymentTo"); v != "" {
		f.PaymentTo = &v
	}

	return f
}

func parseSupplierFilter(url url.Values) entity.SupplierFilter {
	f := entity.SupplierFilter{}

	f.SortBy, f.OrderBy = parseSort(url)
	f.Page, f.Limit = parsePagination(url)

	if v := url.Get("taxId"); v != "" {
		taxID := entity.NormalizeTaxID(v)
		f.TaxID = &taxID
	}

	if v := url.Get("state"); v != "" {
		f.State = &v
	}

	if v := url.Get("activityCode"); v != "" {
		f.ActivityCode = &v
	}

	return f
}

func parseRuleFilter(url url.Values) entity.RuleFilter {
	f := entity.RuleFilter{}

	f.SortBy, f.OrderBy = parseSort(url)
	f.Page, f.Limit = parsePagination(url)

	if v := url.Get("activityCode"); v != "" {
		f.ActivityCode = &v
	}

	return f
}

func parsePagination(url url.Values) (page, limit uint64) {
	const (
		defaultLimit uint64 = 10
		maxLimit     uint64 = 100
		defaultPage  uint64 = 1
	)

	limit, err := strconv.ParseUint(url.Get("limit"), 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err = strconv.ParseUint(url.Get("page"), 10, 64)
	if err != nil || page == 0 {
		page = defaultPage
	}

	return page, limit
}

// parseSort falls back to created_at DESC for anything that is not a known
// sortable column, which also keeps caller input out of the ORDER BY clause.
func parseSort(url url.Values) (entity.SortCol, entity.OrderByCol) {
	sortBy := entity.SortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	return sortBy, orderBy
}
