package domain_test

import (
	"encoding/json"
	"testing"

	"biblioteca/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestMultaUnmarshalCanonico(t *testing.T) {
	raw := `{
		"MultaID": 7,
		"ReservaID": 3,
		"ClienteID": 12,
		"Valor": 30.55,
		"DataVencimento": "2024-01-10",
		"DataPagamento": "15/01/2024",
		"Status": "Paga"
	}`

	var m domain.Multa
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, 7, m.MultaID)
	require.Equal(t, 3, m.ReservaID)
	require.Equal(t, 12, m.ClienteID)
	require.Equal(t, "30.55", m.Valor)
	require.Equal(t, "2024-01-10", m.DataVencimento)
	require.Equal(t, "15/01/2024", m.DataPagamento)
	require.Equal(t, "Paga", m.Status)
}

func TestMultaUnmarshalSnakeCase(t *testing.T) {
	raw := `{
		"multa_id": 7,
		"reserva_id": 3,
		"cliente_id": 12,
		"valor": "30.55",
		"data_vencimento": "2024-01-10",
		"status": "pendente"
	}`

	var m domain.Multa
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, 7, m.MultaID)
	require.Equal(t, 3, m.ReservaID)
	require.Equal(t, 12, m.ClienteID)
	require.Equal(t, "30.55", m.Valor)
	require.Equal(t, "2024-01-10", m.DataVencimento)
	require.Empty(t, m.DataPagamento)
	require.Equal(t, "pendente", m.Status)
}

func TestMultaUnmarshalLiftsNestedReserva(t *testing.T) {
	raw := `{
		"MultaID": 9,
		"Valor": 10,
		"reserva": {
			"ReservaID": 44,
			"ClienteID": 5,
			"LivroNome": "Dom Casmurro",
			"cliente": {"ClienteID": 5, "Nome": "Ana", "Sobrenome": "Souza"}
		}
	}`

	var m domain.Multa
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, 44, m.ReservaID)
	require.Equal(t, 5, m.ClienteID)
	require.Equal(t, "10", m.Valor)
	require.Equal(t, "Ana Souza", m.NomeCliente())
	require.Equal(t, "Dom Casmurro", m.NomeLivro())
}

func TestMultaUnmarshalPrefereRegistrosDaReserva(t *testing.T) {
	raw := `{
		"MultaID": 2,
		"cliente": {"ClienteID": 9, "Nome": "Duplicado"},
		"livro": {"NomeLivro": "Cópia Antiga"},
		"reserva": {
			"ReservaID": 44,
			"cliente": {"ClienteID": 5, "Nome": "Ana", "Sobrenome": "Souza"},
			"livro": {"NomeLivro": "Dom Casmurro"}
		}
	}`

	var m domain.Multa
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, "Ana Souza", m.NomeCliente())
	require.Equal(t, "Dom Casmurro", m.NomeLivro())
}

func TestMultaNomeLivroPrefereRegistro(t *testing.T) {
	raw := `{
		"MultaID": 1,
		"livro": {"NomeLivro": "Grande Sertão"},
		"reserva": {"LivroNome": "Outro Nome"}
	}`

	var m domain.Multa
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, "Grande Sertão", m.NomeLivro())
}

func TestClienteUnmarshalAltID(t *testing.T) {
	var c domain.Cliente
	require.NoError(t, json.Unmarshal([]byte(`{"cliente_id": 33, "Nome": "João"}`), &c))
	require.Equal(t, 33, c.ClienteID)
	require.Equal(t, "João", c.NomeCompleto())
}
