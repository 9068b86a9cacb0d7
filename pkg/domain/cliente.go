package domain

import "encoding/json"

// Endereco is the address block of a client. The registration endpoint wants
// these fields flattened into the client payload; responses may nest them.
type Endereco struct {
	CEP    string `json:"CEP"`
	Rua    string `json:"Rua"`
	Numero string `json:"Numero"`
	Bairro string `json:"Bairro"`
	Cidade string `json:"Cidade"`
	Estado string `json:"Estado"`
}

// Cliente is a library client as returned by the /cliente endpoints.
type Cliente struct {
	ClienteID      int
	Nome           string
	Sobrenome      string
	CPF            string
	DataNascimento string
	DataAfiliacao  string
	Endereco       *Endereco
}

type clienteJSON struct {
	ClienteID      int       `json:"ClienteID"`
	ClienteIDAlt   int       `json:"cliente_id"`
	Nome           string    `json:"Nome"`
	Sobrenome      string    `json:"Sobrenome"`
	CPF            string    `json:"CPF"`
	DataNascimento string    `json:"DataNascimento"`
	DataAfiliacao  string    `json:"DataAfiliacao"`
	Endereco       *Endereco `json:"endereco"`
}

// UnmarshalJSON coalesces the two identifier spellings the API emits.
func (c *Cliente) UnmarshalJSON(data []byte) error {
	var aux clienteJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.ClienteID = aux.ClienteID
	if c.ClienteID == 0 {
		c.ClienteID = aux.ClienteIDAlt
	}
	c.Nome = aux.Nome
	c.Sobrenome = aux.Sobrenome
	c.CPF = aux.CPF
	c.DataNascimento = aux.DataNascimento
	c.DataAfiliacao = aux.DataAfiliacao
	c.Endereco = aux.Endereco

	return nil
}

// NomeCompleto joins first and last name, skipping whichever is missing.
func (c Cliente) NomeCompleto() string {
	switch {
	case c.Nome != "" && c.Sobrenome != "":
		return c.Nome + " " + c.Sobrenome
	case c.Nome != "":
		return c.Nome
	default:
		return c.Sobrenome
	}
}
