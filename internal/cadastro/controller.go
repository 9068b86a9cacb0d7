// Package cadastro implements the registration use cases: validate operator
// input, normalize dates for the API and submit.
package cadastro

import (
	"context"
	"strconv"
	"strings"

	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/formatter"
	"biblioteca/pkg/serrors"
	"biblioteca/pkg/validator"
)

// DadosCliente is the client registration form as the operator filled it.
// All fields are textual; dates may come in any accepted layout.
type DadosCliente struct {
	Nome           string
	Sobrenome      string
	CPF            string
	DataNascimento string
	DataAfiliacao  string
	CEP            string
	Rua            string
	Numero         string
	Bairro         string
	Cidade         string
	Estado         string
}

// DadosReserva is the reservation form as the operator filled it.
type DadosReserva struct {
	CPFReserva   string
	NomeLivro    string
	DataRetirada string
	DataVolta    string
	QntdLivro    string
	Observacao   string
}

// Controller validates and submits registrations.
type Controller struct {
	transporte apiclient.Transport
}

// New constructs a Controller on top of the given transport.
func New(transporte apiclient.Transport) *Controller {
	return &Controller{transporte: transporte}
}

// ValidarDadosCliente checks the client form. Only the name is strictly
// required; the other fields are validated when present. The check order is
// part of the contract, operators see the first failure only.
func ValidarDadosCliente(dados DadosCliente) error {
	if strings.TrimSpace(dados.Nome) == "" {
		return serrors.With(serrors.ErrValidation, "Nome é obrigatório")
	}

	if d := strings.TrimSpace(dados.DataNascimento); d != "" && !validator.ValidarData(d) {
		return serrors.With(serrors.ErrValidation, "Data de nascimento inválida")
	}
	if d := strings.TrimSpace(dados.DataAfiliacao); d != "" && !validator.ValidarData(d) {
		return serrors.With(serrors.ErrValidation, "Data de afiliação inválida")
	}
	if cpf := strings.TrimSpace(dados.CPF); cpf != "" && !validator.ValidarCPF(cpf) {
		return serrors.With(serrors.ErrValidation, "CPF inválido")
	}
	if cep := strings.TrimSpace(dados.CEP); cep != "" && !validator.ValidarCEP(cep) {
		return serrors.With(serrors.ErrValidation, "CEP inválido")
	}

	return nil
}

// ValidarDadosReserva checks the reservation form.
func ValidarDadosReserva(dados DadosReserva) error {
	if strings.TrimSpace(dados.NomeLivro) == "" {
		return serrors.With(serrors.ErrValidation, "NomeLivro é obrigatório")
	}

	if d := strings.TrimSpace(dados.DataRetirada); d != "" && !validator.ValidarData(d) {
		return serrors.With(serrors.ErrValidation, "Data de retirada inválida")
	}
	if d := strings.TrimSpace(dados.DataVolta); d != "" && !validator.ValidarData(d) {
		return serrors.With(serrors.ErrValidation, "Data de volta inválida")
	}
	if cpf := strings.TrimSpace(dados.CPFReserva); cpf != "" && !validator.ValidarCPF(cpf) {
		return serrors.With(serrors.ErrValidation, "CPF inválido")
	}

	if qntd := strings.TrimSpace(dados.QntdLivro); qntd != "" {
		n, err := strconv.Atoi(qntd)
		if err != nil {
			return serrors.With(serrors.ErrValidation, "Quantidade deve ser um número")
		}
		if n <= 0 {
			return serrors.With(serrors.ErrValidation, "Quantidade deve ser maior que 0")
		}
	}

	return nil
}

// CadastrarCliente validates the form and submits it, returning the
// user-facing success message.
func (c *Controller) CadastrarCliente(ctx context.Context, dados DadosCliente) (string, error) {
	if err := ValidarDadosCliente(dados); err != nil {
		return "", err
	}

	payload := map[string]any{
		"Nome":           validator.SanitizarEntrada(dados.Nome),
		"Sobrenome":      validator.SanitizarEntrada(dados.Sobrenome),
		"CPF":            validator.SanitizarEntrada(dados.CPF),
		"DataNascimento": formatter.NormalizarDataParaAPI(dados.DataNascimento),
		"DataAfiliacao":  formatter.NormalizarDataParaAPI(dados.DataAfiliacao),
		"CEP":            validator.SanitizarEntrada(dados.CEP),
		"Rua":            validator.SanitizarEntrada(dados.Rua),
		"Numero":         validator.SanitizarEntrada(dados.Numero),
		"Bairro":         validator.SanitizarEntrada(dados.Bairro),
		"Cidade":         validator.SanitizarEntrada(dados.Cidade),
		"Estado":         validator.SanitizarEntrada(dados.Estado),
	}

	if _, err := c.transporte.Post(ctx, "/cliente", payload); err != nil {
		return "", err
	}

	return "Cliente cadastrado com sucesso!", nil
}

// CadastrarReserva validates the form and submits it.
func (c *Controller) CadastrarReserva(ctx context.Context, dados DadosReserva) (string, error) {
	if err := ValidarDadosReserva(dados); err != nil {
		return "", err
	}

	payload := map[string]any{
		"CPFReserva":   validator.SanitizarEntrada(dados.CPFReserva),
		"NomeLivro":    validator.SanitizarEntrada(dados.NomeLivro),
		"DataRetirada": formatter.NormalizarDataParaAPI(dados.DataRetirada),
		"DataVolta":    formatter.NormalizarDataParaAPI(dados.DataVolta),
		"QntdLivro":    validator.SanitizarEntrada(dados.QntdLivro),
		"Observacao":   validator.SanitizarEntrada(dados.Observacao),
	}

	if _, err := c.transporte.Post(ctx, "/reservas", payload); err != nil {
		return "", err
	}

	return "Reserva cadastrada com sucesso!", nil
}
