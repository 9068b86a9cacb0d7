package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"biblioteca/pkg/domain"
	"biblioteca/pkg/formatter"
	"biblioteca/pkg/serrors"

	"github.com/shopspring/decimal"
)

// FiltroMultas narrows a fine listing. Zero-valued fields are left out of
// the query string.
type FiltroMultas struct {
	ClienteID int
	ReservaID int
	MultaID   int
	Status    string
	Vencidas  bool
}

type multaPayload struct {
	ReservaID      int     `json:"ReservaID"`
	Valor          float64 `json:"Valor"`
	DataVencimento string  `json:"DataVencimento"`
}

type pagamentoPayload struct {
	DataPagamento string `json:"DataPagamento"`
}

// ListarMultas lists fines matching the filter.
func (c *Client) ListarMultas(ctx context.Context, filtro FiltroMultas) ([]domain.Multa, error) {
	query := url.Values{}

	if filtro.ClienteID != 0 {
		if filtro.ClienteID < 0 {
			return nil, serrors.With(serrors.ErrValidation, "ID do cliente inválido")
		}
		query.Set("clienteId", strconv.Itoa(filtro.ClienteID))
	}
	if filtro.ReservaID != 0 {
		if filtro.ReservaID < 0 {
			return nil, serrors.With(serrors.ErrValidation, "ID da reserva inválido")
		}
		query.Set("reservaId", strconv.Itoa(filtro.ReservaID))
	}
	if filtro.MultaID != 0 {
		if filtro.MultaID < 0 {
			return nil, serrors.With(serrors.ErrValidation, "ID da multa inválido")
		}
		query.Set("multaId", strconv.Itoa(filtro.MultaID))
	}
	if filtro.Status != "" {
		query.Set("status", strings.ToLower(filtro.Status))
	}
	if filtro.Vencidas {
		query.Set("vencidas", "true")
	}

	payload, err := c.Get(ctx, "/multas", query)
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Multa](payload)
}

// ListarMultasPorCliente lists the fines of one client.
func (c *Client) ListarMultasPorCliente(ctx context.Context, clienteID int) ([]domain.Multa, error) {
	return c.ListarMultas(ctx, FiltroMultas{ClienteID: clienteID})
}

// ListarMultasPendentes lists all unpaid fines.
func (c *Client) ListarMultasPendentes(ctx context.Context) ([]domain.Multa, error) {
	return c.ListarMultas(ctx, FiltroMultas{Status: "pendente"})
}

// CriarMulta registers a fine against a reservation. The due date may come
// in GUI (DD/MM/YYYY) or API (YYYY-MM-DD) form and is normalized before
// sending.
func (c *Client) CriarMulta(ctx context.Context, reservaID int, valor decimal.Decimal, dataVencimento string) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}
	if !valor.IsPositive() {
		return "", serrors.With(serrors.ErrValidation, "Valor deve ser maior que zero")
	}
	if strings.TrimSpace(dataVencimento) == "" {
		return "", serrors.With(serrors.ErrValidation, "Data de vencimento é obrigatória")
	}

	payload := multaPayload{
		ReservaID:      reservaID,
		Valor:          valor.InexactFloat64(),
		DataVencimento: formatter.NormalizarDataParaAPI(strings.TrimSpace(dataVencimento)),
	}

	if _, err := c.Post(ctx, "/multas", payload); err != nil {
		return "", err
	}

	return "Multa registrada com sucesso!", nil
}

// PagarMulta marks a fine as paid. An empty payment date means today.
func (c *Client) PagarMulta(ctx context.Context, multaID int, dataPagamento string) (string, error) {
	if multaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da multa inválido")
	}

	data := strings.TrimSpace(dataPagamento)
	if data == "" {
		data = time.Now().Format("02/01/2006")
	}

	payload := pagamentoPayload{DataPagamento: formatter.NormalizarDataParaAPI(data)}
	if _, err := c.Patch(ctx, fmt.Sprintf("/multas/%d/pagar", multaID), payload); err != nil {
		return "", err
	}

	return "Multa marcada como paga!", nil
}
