package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"biblioteca/pkg/domain"
	"biblioteca/pkg/serrors"
)

// CadastrarReservaRequest is the payload for a new reservation, in the shape
// the API expects.
type CadastrarReservaRequest struct {
	CPFReserva   string `json:"CPFReserva"`
	NomeLivro    string `json:"NomeLivro"`
	LivroID      int    `json:"LivroID,omitempty"`
	DataRetirada string `json:"DataRetirada"`
	DataVolta    string `json:"DataVolta"`
	Entrega      string `json:"Entrega,omitempty"`
	QntdLivro    int    `json:"QntdLivro"`
	Observacao   string `json:"Observacao,omitempty"`
}

type devolucaoPayload struct {
	ReservaID         int    `json:"reserva_id"`
	DataDevolucaoReal string `json:"data_devolucao_real"`
}

// CadastrarReserva registers a new reservation.
func (c *Client) CadastrarReserva(ctx context.Context, req CadastrarReservaRequest) (string, error) {
	if req == (CadastrarReservaRequest{}) {
		return "", serrors.With(serrors.ErrValidation, "Dados da reserva não podem ser vazios")
	}

	if _, err := c.Post(ctx, "/reservas", req); err != nil {
		return "", err
	}

	return "Reserva cadastrada com sucesso!", nil
}

// ListarReservas lists reservations, optionally filtered by lifecycle
// status. "todas" (or blank) means no filter.
func (c *Client) ListarReservas(ctx context.Context, filtroStatus string) ([]domain.Reserva, error) {
	var query url.Values
	if filtroStatus != "" && filtroStatus != "todas" {
		query = url.Values{"status": {filtroStatus}}
	}

	payload, err := c.Get(ctx, "/reservas", query)
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Reserva](payload)
}

// ListarReservasAtivas lists only the active reservations.
func (c *Client) ListarReservasAtivas(ctx context.Context) ([]domain.Reserva, error) {
	return c.ListarReservas(ctx, domain.ReservaAtiva)
}

// ObterReservaPorID fetches a single reservation.
func (c *Client) ObterReservaPorID(ctx context.Context, reservaID int) (domain.Reserva, error) {
	if reservaID <= 0 {
		return domain.Reserva{}, serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}

	payload, err := c.Get(ctx, fmt.Sprintf("/reservas/%d", reservaID), nil)
	if err != nil {
		return domain.Reserva{}, err
	}

	return ExtrairObjeto[domain.Reserva](payload)
}

// AtualizarReserva replaces a reservation's data via PUT.
func (c *Client) AtualizarReserva(ctx context.Context, reservaID int, dados map[string]any) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}
	if len(dados) == 0 {
		return "", serrors.With(serrors.ErrValidation, "Nenhum dado para atualizar")
	}

	if _, err := c.Put(ctx, fmt.Sprintf("/reservas/%d", reservaID), dados); err != nil {
		return "", err
	}

	return "Reserva atualizada com sucesso!", nil
}

// AlterarStatusReserva moves a reservation to another lifecycle status via
// PATCH. DataEntrega is attached when non-empty, which is how a return date
// reaches the API.
func (c *Client) AlterarStatusReserva(ctx context.Context, reservaID int, novoStatus, dataEntrega string) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}
	switch novoStatus {
	case domain.ReservaAtiva, domain.ReservaFinalizada, domain.ReservaCancelada:
	default:
		return "", serrors.With(serrors.ErrValidation, "Status inválido: %s", novoStatus)
	}

	dados := map[string]any{"status": novoStatus}
	if dataEntrega != "" {
		dados["DataEntrega"] = dataEntrega
	}

	if _, err := c.Patch(ctx, fmt.Sprintf("/reservas/%d", reservaID), dados); err != nil {
		return "", err
	}

	return fmt.Sprintf("Reserva marcada como %s!", novoStatus), nil
}

// CancelarReserva cancels a reservation.
func (c *Client) CancelarReserva(ctx context.Context, reservaID int) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}

	if _, err := c.Delete(ctx, fmt.Sprintf("/reservas/%d", reservaID)); err != nil {
		return "", err
	}

	return "Reserva cancelada com sucesso!", nil
}

// FinalizarReserva marks a reservation as returned on the given date. The
// API accepts the date as either DD/MM/YYYY or YYYY-MM-DD.
func (c *Client) FinalizarReserva(ctx context.Context, reservaID int, dataEntrega string) (string, error) {
	if strings.TrimSpace(dataEntrega) == "" {
		return "", serrors.With(serrors.ErrValidation, "Data de entrega não pode ser vazia")
	}

	return c.AlterarStatusReserva(ctx, reservaID, domain.ReservaFinalizada, strings.TrimSpace(dataEntrega))
}

// RegistrarDevolucao records a book return through the dedicated returns
// endpoint. The date must already be in YYYY-MM-DD.
func (c *Client) RegistrarDevolucao(ctx context.Context, reservaID int, dataDevolucao string) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID da reserva inválido")
	}
	if strings.TrimSpace(dataDevolucao) == "" {
		return "", serrors.With(serrors.ErrValidation, "Data de devolução não pode ser vazia")
	}

	payload := devolucaoPayload{ReservaID: reservaID, DataDevolucaoReal: strings.TrimSpace(dataDevolucao)}
	if _, err := c.Post(ctx, "/devolucoes", payload); err != nil {
		return "", err
	}

	return "Devolução registrada com sucesso!", nil
}
