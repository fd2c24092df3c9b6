package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/recuperatax/audit/internal/entity"
	"github.com/recuperatax/audit/pkg/config"
	"github.com/recuperatax/audit/pkg/transport"
)

// Client calls the public company registry to resolve a CNPJ into company
// data. Unregistered IDs and throttling map to distinct error kinds so the
// caller can tell a terminal miss from a transient failure.
type Client struct {
	cfg config.Registry
	c   *http.Client
}

func NewClient(cfg config.Registry) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type companyResponse struct {
	RazaoSocial         string      `json:"razao_social"`
	NomeFantasia        string      `json:"nome_fantasia"`
	CnaeFiscal          json.Number `json:"cnae_fiscal"`
	CnaeFiscalDescricao string      `json:"cnae_fiscal_descricao"`
	Logradouro          string      `json:"logradouro"`
	Numero              string      `json:"numero"`
	Bairro              string      `json:"bairro"`
	Municipio           string      `json:"municipio"`
	UF                  string      `json:"uf"`
	CEP                 string      `json:"cep"`
	DDDTelefone1        string      `json:"ddd_telefone_1"`
	Email               string      `json:"email"`
}

func (c *Client) Company(ctx context.Context, taxID string) (entity.RegistryCompany, error) {
	reqURL := c.cfg.BaseURL + "/cnpj/v1/" + entity.NormalizeTaxID(taxID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return entity.RegistryCompany{}, fmt.Errorf("%w: %s", entity.ErrRegistryThrottled, err)
		}

		return entity.RegistryCompany{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity.RegistryCompany{}, fmt.Errorf("%w: cnpj %s", entity.ErrSupplierNotRegistered, taxID)
	case resp.StatusCode == http.StatusTooManyRequests:
		return entity.RegistryCompany{}, fmt.Errorf("%w: %s", entity.ErrRegistryThrottled, body)
	case resp.StatusCode >= http.StatusInternalServerError:
		return entity.RegistryCompany{}, fmt.Errorf("%w: status %d: %s", entity.ErrRegistryThrottled, resp.StatusCode, body)
	case resp.StatusCode != http.StatusOK:
		return entity.RegistryCompany{}, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData companyResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.RegistryCompany{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return entity.RegistryCompany{
		LegalName:           respData.RazaoSocial,
		TradeName:           respData.NomeFantasia,
		ActivityDescription: respData.CnaeFiscalDescricao,
		ActivityCode:        activityCode(respData.CnaeFiscal),
		Address:             address(respData),
		City:                respData.Municipio,
		State:               respData.UF,
		PostalCode:          respData.CEP,
		Phone:               respData.DDDTelefone1,
		Email:               respData.Email,
	}, nil
}

// activityCode keeps the CNAE as the registry's numeric string, dropping a
// trailing ".0" some gateways add when the field passes through as a float.
func activityCode(n json.Number) string {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}

	if f, err := n.Float64(); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}

	return s
}

func address(r companyResponse) string {
	parts := make([]string, 0, 3)

	for _, p := range []string{r.Logradouro, r.Numero, r.Bairro} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}
