package domain

import (
	"encoding/json"
	"strconv"
)

// Multa is a monetary fine tied to a reservation. Valor stays textual here:
// the API emits it either as a JSON number or as a string, and conversion to
// a decimal is the fine controller's job.
type Multa struct {
	MultaID        int
	ReservaID      int
	ClienteID      int
	Valor          string
	DataVencimento string
	DataPagamento  string
	Status         string
	Reserva        *Reserva
	Cliente        *Cliente
	Livro          *Livro
}

type multaJSON struct {
	MultaID           int      `json:"MultaID"`
	MultaIDAlt        int      `json:"multa_id"`
	ReservaID         int      `json:"ReservaID"`
	ReservaIDAlt      int      `json:"reserva_id"`
	ClienteID         int      `json:"ClienteID"`
	ClienteIDAlt      int      `json:"cliente_id"`
	Valor             any      `json:"Valor"`
	ValorAlt          any      `json:"valor"`
	DataVencimento    string   `json:"DataVencimento"`
	DataVencimentoAlt string   `json:"data_vencimento"`
	DataPagamento     string   `json:"DataPagamento"`
	DataPagamentoAlt  string   `json:"data_pagamento"`
	Status            string   `json:"Status"`
	StatusAlt         string   `json:"status"`
	Reserva           *Reserva `json:"reserva"`
	Cliente           *Cliente `json:"cliente"`
	Livro             *Livro   `json:"livro"`
}

// UnmarshalJSON normalizes the field-spelling variants the API emits and
// lifts client/book records nested under the reservation to the top level,
// so callers see one canonical shape. The reserva-nested records win over
// top-level ones: the reservation is the authoritative join.
func (m *Multa) UnmarshalJSON(data []byte) error {
	var aux multaJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.MultaID = primeiro(aux.MultaID, aux.MultaIDAlt)
	m.ReservaID = primeiro(aux.ReservaID, aux.ReservaIDAlt)
	m.ClienteID = primeiro(aux.ClienteID, aux.ClienteIDAlt)
	m.Valor = valorTextual(aux.Valor, aux.ValorAlt)
	m.DataVencimento = primeiroTexto(aux.DataVencimento, aux.DataVencimentoAlt)
	m.DataPagamento = primeiroTexto(aux.DataPagamento, aux.DataPagamentoAlt)
	m.Status = primeiroTexto(aux.Status, aux.StatusAlt)
	m.Reserva = aux.Reserva
	m.Cliente = aux.Cliente
	m.Livro = aux.Livro

	if aux.Reserva != nil {
		if m.ReservaID == 0 {
			m.ReservaID = aux.Reserva.ReservaID
		}
		if m.ClienteID == 0 {
			m.ClienteID = aux.Reserva.ClienteID
		}
		if aux.Reserva.Cliente != nil {
			m.Cliente = aux.Reserva.Cliente
		}
		if aux.Reserva.Livro != nil {
			m.Livro = aux.Reserva.Livro
		}
	}
	if m.ClienteID == 0 && m.Cliente != nil {
		m.ClienteID = m.Cliente.ClienteID
	}

	return nil
}

// NomeLivro returns the book title associated with the fine, checking the
// lifted book record first and the reservation's denormalized name last.
func (m Multa) NomeLivro() string {
	if m.Livro != nil && m.Livro.Titulo() != "" {
		return m.Livro.Titulo()
	}
	if m.Reserva != nil {
		if m.Reserva.LivroNome != "" {
			return m.Reserva.LivroNome
		}

		return m.Reserva.NomeLivro
	}

	return ""
}

// NomeCliente returns the client display name associated with the fine.
func (m Multa) NomeCliente() string {
	if m.Cliente == nil {
		return ""
	}

	return m.Cliente.NomeCompleto()
}

func primeiro(a, b int) int {
	if a != 0 {
		return a
	}

	return b
}

func primeiroTexto(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

// valorTextual renders whichever raw value is present as a string. JSON
// numbers arrive as float64; the shortest representation keeps "30.55" as
// "30.55" without inventing digits.
func valorTextual(a, b any) string {
	v := a
	if v == nil {
		v = b
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
