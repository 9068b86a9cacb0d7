package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"biblioteca/pkg/domain"
	"biblioteca/pkg/serrors"
)

// CadastrarClienteRequest carries the data for a new client. Endereco is kept
// nested here for the caller's convenience; the registration endpoint wants
// the address fields flattened into the client payload, which montarPayloadCliente
// takes care of.
type CadastrarClienteRequest struct {
	Nome           string
	Sobrenome      string
	CPF            string
	DataNascimento string
	DataAfiliacao  string
	Endereco       domain.Endereco
}

type clientePayload struct {
	Nome           string `json:"Nome"`
	Sobrenome      string `json:"Sobrenome"`
	CPF            string `json:"CPF"`
	DataNascimento string `json:"DataNascimento"`
	DataAfiliacao  string `json:"DataAfiliacao"`
	CEP            string `json:"CEP"`
	Rua            string `json:"Rua"`
	Numero         string `json:"Numero"`
	Bairro         string `json:"Bairro"`
	Cidade         string `json:"Cidade"`
	Estado         string `json:"Estado"`
}

// BuscarClientePorNome searches clients by name.
func (c *Client) BuscarClientePorNome(ctx context.Context, nome string) ([]domain.Cliente, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, serrors.With(serrors.ErrValidation, "Nome não pode ser vazio")
	}

	payload, err := c.Get(ctx, "/cliente", url.Values{"Nome": {strings.TrimSpace(nome)}})
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Cliente](payload)
}

// BuscarClientePorCPF fetches a single client by tax id. Formatting
// punctuation is stripped before the lookup.
func (c *Client) BuscarClientePorCPF(ctx context.Context, cpf string) (domain.Cliente, error) {
	if strings.TrimSpace(cpf) == "" {
		return domain.Cliente{}, serrors.With(serrors.ErrValidation, "CPF não pode ser vazio")
	}

	limpo := limparCPF(cpf)
	if len(limpo) != 11 || !somenteDigitos(limpo) {
		return domain.Cliente{}, serrors.With(serrors.ErrValidation, "CPF inválido")
	}

	payload, err := c.Get(ctx, "/cliente/cpf/"+limpo, nil)
	if err != nil {
		return domain.Cliente{}, err
	}

	return ExtrairObjeto[domain.Cliente](payload)
}

// BuscarClientesPorEstado searches clients by the state of their address.
// The state is upper-cased, matching how the API stores it.
func (c *Client) BuscarClientesPorEstado(ctx context.Context, estado string) ([]domain.Cliente, error) {
	if strings.TrimSpace(estado) == "" {
		return nil, serrors.With(serrors.ErrValidation, "Estado não pode ser vazio")
	}

	payload, err := c.Get(ctx, "/endereco", url.Values{"Estado": {strings.ToUpper(strings.TrimSpace(estado))}})
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Cliente](payload)
}

// CadastrarCliente registers a new client, returning the user-facing success
// message. All fields are required; the address travels flattened.
func (c *Client) CadastrarCliente(ctx context.Context, req CadastrarClienteRequest) (string, error) {
	payload := montarPayloadCliente(req)
	if err := validarPayloadCliente(payload); err != nil {
		return "", err
	}

	if _, err := c.Post(ctx, "/cliente", payload); err != nil {
		return "", err
	}

	return "Cliente cadastrado com sucesso!", nil
}

// AtualizarCliente replaces a client's data via PUT.
func (c *Client) AtualizarCliente(ctx context.Context, clienteID int, dados map[string]any) (string, error) {
	if clienteID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID do cliente inválido")
	}
	if len(dados) == 0 {
		return "", serrors.With(serrors.ErrValidation, "Dados para atualização não podem ser vazios")
	}

	if _, err := c.Put(ctx, fmt.Sprintf("/cliente/%d", clienteID), dados); err != nil {
		return "", err
	}

	return "Cliente atualizado com sucesso!", nil
}

// DeletarCliente removes a client.
func (c *Client) DeletarCliente(ctx context.Context, clienteID int) (string, error) {
	if clienteID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID do cliente inválido")
	}

	if _, err := c.Delete(ctx, fmt.Sprintf("/cliente/%d", clienteID)); err != nil {
		return "", err
	}

	return "Cliente deletado com sucesso!", nil
}

// montarPayloadCliente flattens the nested address into the wire shape and
// normalizes every field: trimmed strings, digits-only CPF.
func montarPayloadCliente(req CadastrarClienteRequest) clientePayload {
	return clientePayload{
		Nome:           strings.TrimSpace(req.Nome),
		Sobrenome:      strings.TrimSpace(req.Sobrenome),
		CPF:            limparCPF(req.CPF),
		DataNascimento: strings.TrimSpace(req.DataNascimento),
		DataAfiliacao:  strings.TrimSpace(req.DataAfiliacao),
		CEP:            strings.TrimSpace(req.Endereco.CEP),
		Rua:            strings.TrimSpace(req.Endereco.Rua),
		Numero:         strings.TrimSpace(req.Endereco.Numero),
		Bairro:         strings.TrimSpace(req.Endereco.Bairro),
		Cidade:         strings.TrimSpace(req.Endereco.Cidade),
		Estado:         strings.TrimSpace(req.Endereco.Estado),
	}
}

func validarPayloadCliente(p clientePayload) error {
	obrigatorios := []struct {
		campo string
		valor string
	}{
		{"Nome", p.Nome},
		{"Sobrenome", p.Sobrenome},
		{"CPF", p.CPF},
		{"DataNascimento", p.DataNascimento},
		{"DataAfiliacao", p.DataAfiliacao},
		{"CEP", p.CEP},
		{"Rua", p.Rua},
		{"Numero", p.Numero},
		{"Bairro", p.Bairro},
		{"Cidade", p.Cidade},
		{"Estado", p.Estado},
	}
	for _, item := range obrigatorios {
		if item.valor == "" {
			return serrors.With(serrors.ErrValidation, "Campo obrigatório ausente: %s", item.campo)
		}
	}

	return nil
}

func limparCPF(cpf string) string {
	substituidor := strings.NewReplacer(".", "", "-", "", " ", "")

	return substituidor.Replace(strings.TrimSpace(cpf))
}

func somenteDigitos(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
