package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recuperatax/audit/internal/clients/registry"
	"github.com/recuperatax/audit/internal/entity"
	"github.com/recuperatax/audit/pkg/config"
)

func newClient(t *testing.T, handler http.HandlerFunc) *registry.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return registry.NewClient(config.Registry{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})
}

func TestClient_Company(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cnpj/v1/12345678000195", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"razao_social": "ACME CONSULTORIA LTDA",
			"nome_fantasia": "ACME",
			"cnae_fiscal": 6201500,
			"cnae_fiscal_descricao": "Desenvolvimento de programas de computador sob encomenda",
			"logradouro": "AVENIDA PAULISTA",
			"numero": "1000",
			"bairro": "BELA VISTA",
			"municipio": "SAO PAULO",
			"uf": "SP",
			"cep": "01310100",
			"ddd_telefone_1": "1133334444",
			"email": "contato@acme.com.br"
		}`))
	})

	// The tax ID is normalized before it hits the wire.
	company, err := c.Company(context.Background(), "12.345.678/0001-95")
	require.NoError(t, err)

	require.Equal(t, entity.RegistryCompany{
		LegalName:           "ACME CONSULTORIA LTDA",
		TradeName:           "ACME",
		ActivityDescription: "Desenvolvimento de programas de computador sob encomenda",
		ActivityCode:        "6201500",
		Address:             "AVENIDA PAULISTA, 1000, BELA VISTA",
		City:                "SAO PAULO",
		State:               "SP",
		PostalCode:          "01310100",
		Phone:               "1133334444",
		Email:               "contato@acme.com.br",
	}, company)
}

func TestClient_Company_FloatActivityCode(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"razao_social": "ACME LTDA", "cnae_fiscal": 6201500.0}`))
	})

	company, err := c.Company(context.Background(), "12345678000195")
	require.NoError(t, err)
	require.Equal(t, "6201500", company.ActivityCode)
}

func TestClient_Company_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		status  int
		wantErr error
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			wantErr: entity.ErrSupplierNotRegistered,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			wantErr: entity.ErrRegistryThrottled,
		},
		{
			name:    "server error",
			status:  http.StatusBadGateway,
			wantErr: entity.ErrRegistryThrottled,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.Company(context.Background(), "12345678000195")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Company_BearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"razao_social": "ACME LTDA"}`))
	}))
	t.Cleanup(server.Close)

	c := registry.NewClient(config.Registry{
		BaseURL:        server.URL,
		Token:          "test-token",
		TimeoutSeconds: 5,
	})

	_, err := c.Company(context.Background(), "12345678000195")
	require.NoError(t, err)
}
