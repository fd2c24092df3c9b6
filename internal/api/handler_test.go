package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/recuperatax/audit/internal/api"
	"github.com/recuperatax/audit/internal/entity"
	"github.com/recuperatax/audit/internal/mocks"
)

func newServer(t *testing.T, apiKeyEnabled bool) (*httptest.Server, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(apiKeyEnabled, "secret")

	server := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(server.Close)

	return server, s
}

func TestHandler_CreateAudit(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	clientID := uuid.Must(uuid.NewV4())
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	supplier := entity.Supplier{
		ID:           uuid.Must(uuid.NewV4()),
		TaxID:        "12345678000195",
		LegalName:    "ACME LTDA",
		ActivityCode: "6201500",
	}

	payment := entity.Payment{
		ID:             uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		SupplierTaxID:  supplier.TaxID,
		Amount:         decimal.RequireFromString("10000"),
		IssueDate:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		PaymentDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DocumentNumber: "NF-1042",
		Status:         entity.PaymentStatusPaid,
	}

	missing := entity.Payment{
		ID:             uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		SupplierTaxID:  "98765432000100",
		Amount:         decimal.RequireFromString("500"),
		IssueDate:      payment.IssueDate,
		PaymentDate:    payment.PaymentDate,
		DocumentNumber: "NF-1043",
		Status:         entity.PaymentStatusPaid,
	}

	results := []entity.AuditResult{
		{
			Payment:  payment,
			Supplier: supplier,
			Retention: entity.Retention{
				IRRF:   decimal.RequireFromString("150"),
				PIS:    decimal.RequireFromString("65"),
				COFINS: decimal.RequireFromString("300"),
				CSLL:   decimal.RequireFromString("100"),
				ISS:    decimal.RequireFromString("500"),
				Total:  decimal.RequireFromString("1115"),
			},
			Status: entity.AuditResultStatusOK,
		},
		{
			Payment:   missing,
			Retention: entity.ZeroRetention(),
			Status:    entity.AuditResultStatusSupplierNotFound,
			Detail:    "supplier is not registered: cnpj 98765432000100",
		},
	}

	s.EXPECT().AuditPayments(gomock.Any(), clientID, from, to).Return(results, nil)

	body := `{"clientId":"` + clientID.String() + `","startDate":"2024-01-01","endDate":"2024-01-31"}`

	resp, err := http.Post(server.URL+"/api/audits", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.CreateAuditResponse

	err = json.NewDecoder(resp.Body).Decode(&got)
	require.NoError(t, err)
	require.Len(t, got.Results, 2)

	first := got.Results[0]
	require.Equal(t, "OK", first.Status)
	require.NotNil(t, first.Supplier)
	require.Equal(t, "ACME LTDA", first.Supplier.LegalName)
	require.Equal(t, "10000", first.Payment.Amount)
	require.Equal(t, "2024-01-15", first.Payment.PaymentDate)
	require.Equal(t, "150", first.Retencoes.IRRF)
	require.Equal(t, "65", first.Retencoes.PIS)
	require.Equal(t, "300", first.Retencoes.COFINS)
	require.Equal(t, "100", first.Retencoes.CSLL)
	require.Equal(t, "500", first.Retencoes.ISS)
	require.Equal(t, "1115", first.Retencoes.Total)

	second := got.Results[1]
	require.Equal(t, "SUPPLIER_NOT_FOUND", second.Status)
	require.Nil(t, second.Supplier)
	require.Equal(t, "0", second.Retencoes.Total)
	require.NotEmpty(t, second.Detail)
}

func TestHandler_CreateAudit_BadRequest(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	for _, tt := range []struct {
		name string
		body string
	}{
		{
			name: "malformed json",
			body: `{"clientId":`,
		},
		{
			name: "missing client id",
			body: `{"startDate":"2024-01-01","endDate":"2024-01-31"}`,
		},
		{
			name: "bad start date",
			body: `{"clientId":"` + clientID.String() + `","startDate":"01/01/2024","endDate":"2024-01-31"}`,
		},
		{
			name: "period inverted",
			body: `{"clientId":"` + clientID.String() + `","startDate":"2024-01-31","endDate":"2024-01-01"}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Post(server.URL+"/api/audits", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)

			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_CreateAudit_ServiceError(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	s.EXPECT().AuditPayments(gomock.Any(), clientID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("registry is down"))

	body := `{"clientId":"` + clientID.String() + `","startDate":"2024-01-01","endDate":"2024-01-31"}`

	resp, err := http.Post(server.URL+"/api/audits", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got api.ErrorResponse

	err = json.NewDecoder(resp.Body).Decode(&got)
	require.NoError(t, err)
	require.Equal(t, "failed to audit payments", got.Message)
}

func TestHandler_CreatePayment(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	created := entity.Payment{
		ID:             uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		SupplierTaxID:  "12345678000195",
		Amount:         decimal.RequireFromString("1500.50"),
		IssueDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		PaymentDate:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		DocumentNumber: "NF-1042",
		Status:         entity.PaymentStatusPending,
	}

	s.EXPECT().CreatePayment(gomock.Any(), clientID, "12.345.678/0001-95", gomock.Any(),
		created.IssueDate, created.PaymentDate, "NF-1042", "consulting").Return(created, nil)

	body := `{
		"clientId": "` + clientID.String() + `",
		"supplierTaxId": "12.345.678/0001-95",
		"amount": "1500.50",
		"issueDate": "2024-01-10",
		"paymentDate": "2024-01-20",
		"documentNumber": "NF-1042",
		"description": "consulting"
	}`

	resp, err := http.Post(server.URL+"/api/payments", "application/json", strings.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.PaymentEntity

	err = json.NewDecoder(resp.Body).Decode(&got)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "1500.5", got.Amount)
	require.Equal(t, "PENDING", got.Status)
}

func TestHandler_Payment_NotFound(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	id := uuid.Must(uuid.NewV4())

	s.EXPECT().Payment(gomock.Any(), id).Return(entity.Payment{}, entity.ErrNotFound)

	resp, err := http.Get(server.URL + "/api/payments/" + id.String())
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_APIKeyAuth(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, true)

	id := uuid.Must(uuid.NewV4())

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/payments/"+id.String(), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// With the right key the same request goes through.
	s.EXPECT().DeletePayment(gomock.Any(), id).Return(nil)

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/payments/"+id.String(), nil)
	require.NoError(t, err)

	req.Header.Set("X-Api-Key", "secret")

	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp2.Body.Close()

	require.Equal(t, http.StatusNoContent, resp2.StatusCode)
}

func TestHandler_Rule(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	rule := entity.TaxRetentionRule{
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

	s.EXPECT().RuleByActivityCode(gomock.Any(), "6201500").Return(rule, nil)

	resp, err := http.Get(server.URL + "/api/rules/6201500")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.RuleEntity

	err = json.NewDecoder(resp.Body).Decode(&got)
	require.NoError(t, err)
	require.Equal(t, "1.5", got.IRRF)
	require.Equal(t, "5000", got.MinimumValue)
}

func TestHandler_Payments_Filter(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	clientID := uuid.Must(uuid.NewV4())

	s.EXPECT().Payments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.PaymentFilter) ([]entity.Payment, int, error) {
			require.NotNil(t, f.ClientID)
			require.Equal(t, clientID, *f.ClientID)
			require.NotNil(t, f.Status)
			require.Equal(t, entity.PaymentStatusPaid, *f.Status)
			require.Equal(t, uint64(2), f.Page)
			require.Equal(t, uint64(25), f.Limit)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/payments?clientId=" + clientID.String() +
		"&status=PAID&page=2&limit=25")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Payments_DefaultSort(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	s.EXPECT().Payments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.PaymentFilter) ([]entity.Payment, int, error) {
			require.Equal(t, entity.SortByCreatedAt, f.SortBy)
			require.Equal(t, entity.DESC, f.OrderBy)
			require.Equal(t, uint64(1), f.Page)
			require.Equal(t, uint64(10), f.Limit)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/payments")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Payments_RejectsUnknownSortColumn(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	s.EXPECT().Payments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.PaymentFilter) ([]entity.Payment, int, error) {
			// Arbitrary input never reaches the ORDER BY clause.
			require.Equal(t, entity.SortByCreatedAt, f.SortBy)
			require.Equal(t, entity.DESC, f.OrderBy)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/payments?sortBy=" +
		url.QueryEscape("id; DROP TABLE payments; --") + "&orderBy=sideways")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Payments_PageZero(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	s.EXPECT().Payments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.PaymentFilter) ([]entity.Payment, int, error) {
			require.Equal(t, uint64(1), f.Page)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/payments?page=0")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Suppliers_DefaultSort(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	s.EXPECT().Suppliers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.SupplierFilter) ([]entity.Supplier, int, error) {
			require.Equal(t, entity.SortByCreatedAt, f.SortBy)
			require.Equal(t, entity.DESC, f.OrderBy)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/suppliers")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Rules_DefaultSort(t *testing.T) {
	t.Parallel()

	server, s := newServer(t, false)

	s.EXPECT().Rules(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f entity.RuleFilter) ([]entity.TaxRetentionRule, int, error) {
			require.Equal(t, entity.SortByCreatedAt, f.SortBy)
			require.Equal(t, entity.DESC, f.OrderBy)

			return nil, 0, nil
		})

	resp, err := http.Get(server.URL + "/api/rules")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
