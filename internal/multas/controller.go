// Package multas implements the fine-management use cases: listing with
// derived financial information, summaries, manual creation and payment.
package multas

import (
	"context"
	"strings"
	"time"

	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/domain"
	"biblioteca/pkg/formatter"
	"biblioteca/pkg/serrors"

	"github.com/shopspring/decimal"
)

// API is the slice of the client this controller depends on.
type API interface {
	BuscarClientePorCPF(ctx context.Context, cpf string) (domain.Cliente, error)
	ListarMultas(ctx context.Context, filtro apiclient.FiltroMultas) ([]domain.Multa, error)
	CriarMulta(ctx context.Context, reservaID int, valor decimal.Decimal, dataVencimento string) (string, error)
	PagarMulta(ctx context.Context, multaID int, dataPagamento string) (string, error)
}

// Fine statuses derived when the API record carries none.
const (
	StatusPaga     = "Paga"
	StatusVencida  = "Vencida"
	StatusPendente = "Pendente"
)

// MultaDetalhada is a fine enriched with the derived fields screens need:
// parsed value, display dates, overdue state and resolved names.
type MultaDetalhada struct {
	domain.Multa

	ValorDecimal            decimal.Decimal
	ValorFormatado          string
	DataVencimentoFormatada string
	// DataPagamentoFormatada is "N/D" while the fine is unpaid.
	DataPagamentoFormatada string
	// Status keeps the API's value when present, otherwise StatusCalculado.
	Status          string
	StatusCalculado string
	EmAtraso        bool
	DiasEmAtraso    int
	ClienteNome     string
	LivroNome       string
}

// Resumo aggregates the financial totals of a fine listing. Overdue fines
// count toward the pending total as well, they are still owed.
type Resumo struct {
	QuantidadeTotal     int
	QuantidadePendentes int
	QuantidadePagas     int
	QuantidadeVencidas  int

	Total                  decimal.Decimal
	TotalFormatado         string
	TotalPendente          decimal.Decimal
	TotalPendenteFormatado string
	TotalPago              decimal.Decimal
	TotalPagoFormatado     string
	TotalVencido           decimal.Decimal
	TotalVencidoFormatado  string
}

// ExtratoCliente is the answer to a by-CPF lookup: the client, their fines
// and the financial summary.
type ExtratoCliente struct {
	Cliente domain.Cliente
	Multas  []MultaDetalhada
	Resumo  Resumo
}

// Controller encapsulates fine business rules. The clock is injectable so
// overdue computations are testable.
type Controller struct {
	api   API
	agora func() time.Time
}

// New constructs a Controller using the wall clock.
func New(api API) *Controller {
	return &Controller{api: api, agora: time.Now}
}

// NewComRelogio constructs a Controller with a fixed clock, for tests.
func NewComRelogio(api API, agora func() time.Time) *Controller {
	return &Controller{api: api, agora: agora}
}

// ListarMultasPorCPF resolves the client by tax id and returns their fines
// with the financial summary.
func (c *Controller) ListarMultasPorCPF(ctx context.Context, cpf string) (ExtratoCliente, error) {
	cliente, err := c.api.BuscarClientePorCPF(ctx, cpf)
	if err != nil {
		return ExtratoCliente{}, err
	}
	if cliente.ClienteID == 0 {
		return ExtratoCliente{}, serrors.With(serrors.ErrNotFound, "Cliente sem identificador válido.")
	}

	multas, err := c.api.ListarMultas(ctx, apiclient.FiltroMultas{ClienteID: cliente.ClienteID})
	if err != nil {
		return ExtratoCliente{}, err
	}

	detalhadas := c.detalharMultas(multas)

	return ExtratoCliente{
		Cliente: cliente,
		Multas:  detalhadas,
		Resumo:  CalcularResumo(detalhadas),
	}, nil
}

// ListarMultas returns fines matching the filter, enriched.
func (c *Controller) ListarMultas(ctx context.Context, filtro apiclient.FiltroMultas) ([]MultaDetalhada, error) {
	multas, err := c.api.ListarMultas(ctx, filtro)
	if err != nil {
		return nil, err
	}

	return c.detalharMultas(multas), nil
}

// ListarMultasPendentes lists unpaid fines, optionally only the overdue ones.
func (c *Controller) ListarMultasPendentes(ctx context.Context, apenasVencidas bool) ([]MultaDetalhada, error) {
	return c.ListarMultas(ctx, apiclient.FiltroMultas{Status: "pendente", Vencidas: apenasVencidas})
}

// ObterMultaPorID loads a single fine.
func (c *Controller) ObterMultaPorID(ctx context.Context, multaID int) (MultaDetalhada, error) {
	multas, err := c.ListarMultas(ctx, apiclient.FiltroMultas{MultaID: multaID})
	if err != nil {
		return MultaDetalhada{}, err
	}
	if len(multas) == 0 {
		return MultaDetalhada{}, serrors.With(serrors.ErrNotFound, "Multa não encontrada.")
	}

	return multas[0], nil
}

// RegistrarMulta creates a fine manually. The value is accepted in Brazilian
// monetary text form ("R$ 25,50" or "25,50").
func (c *Controller) RegistrarMulta(ctx context.Context, reservaID int, valor, dataVencimento string) (string, error) {
	if reservaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "Informe um ID de reserva válido.")
	}

	valorDecimal, ok := formatter.InterpretarValorMonetario(valor)
	if !ok {
		return "", serrors.With(serrors.ErrValidation, "Valor da multa inválido.")
	}
	if !valorDecimal.IsPositive() {
		return "", serrors.With(serrors.ErrValidation, "Valor da multa deve ser maior que zero.")
	}

	if strings.TrimSpace(dataVencimento) == "" {
		return "", serrors.With(serrors.ErrValidation, "Informe a data de vencimento.")
	}

	return c.api.CriarMulta(ctx, reservaID, valorDecimal, strings.TrimSpace(dataVencimento))
}

// RegistrarPagamento pays a fine. An empty date means today.
func (c *Controller) RegistrarPagamento(ctx context.Context, multaID int, dataPagamento string) (string, error) {
	if multaID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "Informe um ID de multa válido.")
	}

	return c.api.PagarMulta(ctx, multaID, dataPagamento)
}

// CalcularResumo aggregates totals and counts over enriched fines.
func CalcularResumo(multas []MultaDetalhada) Resumo {
	resumo := Resumo{QuantidadeTotal: len(multas)}

	for _, multa := range multas {
		resumo.Total = resumo.Total.Add(multa.ValorDecimal)

		switch {
		case multa.Status == StatusPaga:
			resumo.TotalPago = resumo.TotalPago.Add(multa.ValorDecimal)
			resumo.QuantidadePagas++
		case multa.EmAtraso:
			resumo.TotalVencido = resumo.TotalVencido.Add(multa.ValorDecimal)
			resumo.TotalPendente = resumo.TotalPendente.Add(multa.ValorDecimal)
			resumo.QuantidadeVencidas++
		default:
			resumo.TotalPendente = resumo.TotalPendente.Add(multa.ValorDecimal)
			resumo.QuantidadePendentes++
		}
	}

	resumo.TotalFormatado = formatter.FormatarValorMonetario(resumo.Total)
	resumo.TotalPendenteFormatado = formatter.FormatarValorMonetario(resumo.TotalPendente)
	resumo.TotalPagoFormatado = formatter.FormatarValorMonetario(resumo.TotalPago)
	resumo.TotalVencidoFormatado = formatter.FormatarValorMonetario(resumo.TotalVencido)

	return resumo
}

// detalharMultas derives the display and financial fields of each fine.
// Overdue is a calendar comparison in the operator's zone: today's local
// date against the due date, both at UTC midnight so the difference is a
// whole number of days.
func (c *Controller) detalharMultas(multas []domain.Multa) []MultaDetalhada {
	agora := c.agora()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
	resultado := make([]MultaDetalhada, 0, len(multas))

	for _, multa := range multas {
		valor, err := decimal.NewFromString(multa.Valor)
		if err != nil {
			valor = decimal.Zero
		}
		valor = valor.Round(2)

		vencimento, temVencimento := formatter.InterpretarData(multa.DataVencimento)
		_, temPagamento := formatter.InterpretarData(multa.DataPagamento)

		emAtraso := false
		diasAtraso := 0
		if temVencimento && !temPagamento {
			venc := time.Date(vencimento.Year(), vencimento.Month(), vencimento.Day(), 0, 0, 0, 0, time.UTC)
			if dias := int(hoje.Sub(venc).Hours() / 24); dias > 0 {
				emAtraso = true
				diasAtraso = dias
			}
		}

		calculado := StatusPendente
		switch {
		case temPagamento:
			calculado = StatusPaga
		case emAtraso:
			calculado = StatusVencida
		}
		status := multa.Status
		if status == "" {
			status = calculado
		}

		pagamentoFormatado := "N/D"
		if multa.DataPagamento != "" {
			pagamentoFormatado = formatter.FormatarDataParaExibicao(multa.DataPagamento)
		}

		resultado = append(resultado, MultaDetalhada{
			Multa:                   multa,
			ValorDecimal:            valor,
			ValorFormatado:          formatter.FormatarValorMonetario(valor),
			DataVencimentoFormatada: formatter.FormatarDataParaExibicao(multa.DataVencimento),
			DataPagamentoFormatada:  pagamentoFormatado,
			Status:                  status,
			StatusCalculado:         calculado,
			EmAtraso:                emAtraso,
			DiasEmAtraso:            diasAtraso,
			ClienteNome:             multa.NomeCliente(),
			LivroNome:               multa.NomeLivro(),
		})
	}

	return resultado
}
