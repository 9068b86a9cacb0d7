package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/domain"
	"biblioteca/pkg/serrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func clienteSemRede(t *testing.T) *apiclient.Client {
	t.Helper()

	return newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatalf("requisição inesperada: %s %s", r.Method, r.URL.Path)

		return nil, nil
	})
}

func TestBuscarClientePorCPF_limpaFormatacao(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/cliente/cpf/00000000191", r.URL.Path)

		return resposta(http.StatusOK, `{"data": {"ClienteID": 8, "Nome": "Ana"}}`), nil
	})

	cliente, err := c.BuscarClientePorCPF(context.Background(), "000.000.001-91")
	require.NoError(t, err)
	require.Equal(t, 8, cliente.ClienteID)
}

func TestBuscarClientePorCPF_invalidoNaoChamaAPI(t *testing.T) {
	c := clienteSemRede(t)

	_, err := c.BuscarClientePorCPF(context.Background(), "123")
	require.ErrorIs(t, err, serrors.ErrValidation)

	_, err = c.BuscarClientePorCPF(context.Background(), "   ")
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestBuscarClientesPorEstado_maiusculas(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/endereco", r.URL.Path)
		require.Equal(t, "SP", r.URL.Query().Get("Estado"))

		return resposta(http.StatusOK, `{"data": []}`), nil
	})

	_, err := c.BuscarClientesPorEstado(context.Background(), " sp ")
	require.NoError(t, err)
}

func TestCadastrarCliente_campoObrigatorioAusente(t *testing.T) {
	c := clienteSemRede(t)

	req := apiclient.CadastrarClienteRequest{
		Nome:           "Ana",
		Sobrenome:      "Souza",
		CPF:            "000.000.001-91",
		DataNascimento: "1990-04-12",
		DataAfiliacao:  "2024-01-05",
		Endereco: domain.Endereco{
			CEP: "01310-100", Rua: "Av. Paulista", Numero: "1000",
			Bairro: "Bela Vista", Cidade: "São Paulo",
		},
	}

	_, err := c.CadastrarCliente(context.Background(), req)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "Campo obrigatório ausente: Estado")
}

func TestCadastrarCliente_achataEndereco(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/cliente", r.URL.Path)
		payload := corpoJSON(t, r)
		require.Equal(t, "00000000191", payload["CPF"])
		require.Equal(t, "São Paulo", payload["Cidade"])
		require.NotContains(t, payload, "endereco")

		return resposta(http.StatusCreated, `{"data": {"ClienteID": 1}}`), nil
	})

	req := apiclient.CadastrarClienteRequest{
		Nome:           "Ana",
		Sobrenome:      "Souza",
		CPF:            "000.000.001-91",
		DataNascimento: "1990-04-12",
		DataAfiliacao:  "2024-01-05",
		Endereco: domain.Endereco{
			CEP: "01310-100", Rua: "Av. Paulista", Numero: "1000",
			Bairro: "Bela Vista", Cidade: "São Paulo", Estado: "SP",
		},
	}

	mensagem, err := c.CadastrarCliente(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Cliente cadastrado com sucesso!", mensagem)
}

func TestBuscarLivrosPorAutor_montaConsulta(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/livro/autor", r.URL.Path)
		require.Equal(t, "Machado de Assis", r.URL.Query().Get("NomeAutor"))

		return resposta(http.StatusOK, `{"data": [{"LivroID": 2, "NomeLivro": "Dom Casmurro"}]}`), nil
	})

	livros, err := c.BuscarLivrosPorAutor(context.Background(), " Machado de Assis ")
	require.NoError(t, err)
	require.Len(t, livros, 1)
	require.Equal(t, "Dom Casmurro", livros[0].Titulo())
}

func TestCadastrarLivro_validaCampos(t *testing.T) {
	c := clienteSemRede(t)

	_, err := c.CadastrarLivro(context.Background(), apiclient.CadastrarLivroRequest{
		NomeLivro: "Dom Casmurro", Autor: "Machado de Assis", Editora: "Garnier",
		DataPublicacao: "1899-01-01", Idioma: "Português",
		NomeGenero: "Romance", QuantidadeDisponivel: 3,
	})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "QuantidadePaginas")
}

func TestListarReservas_filtroTodasSemParametro(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/reservas", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)

		return resposta(http.StatusOK, `{"data": []}`), nil
	})

	_, err := c.ListarReservas(context.Background(), "todas")
	require.NoError(t, err)
}

func TestListarReservasAtivas_filtraStatus(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "ativa", r.URL.Query().Get("status"))

		return resposta(http.StatusOK, `{"data": []}`), nil
	})

	_, err := c.ListarReservasAtivas(context.Background())
	require.NoError(t, err)
}

func TestAlterarStatusReserva_statusInvalido(t *testing.T) {
	c := clienteSemRede(t)

	_, err := c.AlterarStatusReserva(context.Background(), 5, "devolvida", "")
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "Status inválido: devolvida")
}

func TestFinalizarReserva_enviaDataEntrega(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/reservas/5", r.URL.Path)
		payload := corpoJSON(t, r)
		require.Equal(t, "finalizada", payload["status"])
		require.Equal(t, "10/02/2024", payload["DataEntrega"])

		return resposta(http.StatusOK, `{}`), nil
	})

	mensagem, err := c.FinalizarReserva(context.Background(), 5, " 10/02/2024 ")
	require.NoError(t, err)
	require.Equal(t, "Reserva marcada como finalizada!", mensagem)
}

func TestRegistrarDevolucao_montaPayload(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/devolucoes", r.URL.Path)
		payload := corpoJSON(t, r)
		require.Equal(t, float64(9), payload["reserva_id"])
		require.Equal(t, "2024-02-10", payload["data_devolucao_real"])

		return resposta(http.StatusCreated, `{}`), nil
	})

	mensagem, err := c.RegistrarDevolucao(context.Background(), 9, "2024-02-10")
	require.NoError(t, err)
	require.Equal(t, "Devolução registrada com sucesso!", mensagem)
}

func TestListarMultas_montaFiltros(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/multas", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "12", q.Get("clienteId"))
		require.Equal(t, "pendente", q.Get("status"))
		require.Equal(t, "true", q.Get("vencidas"))

		return resposta(http.StatusOK, `{"data": [{"MultaID": 1, "Valor": 30.55}]}`), nil
	})

	multas, err := c.ListarMultas(context.Background(), apiclient.FiltroMultas{
		ClienteID: 12,
		Status:    "PENDENTE",
		Vencidas:  true,
	})
	require.NoError(t, err)
	require.Len(t, multas, 1)
	require.Equal(t, "30.55", multas[0].Valor)
}

func TestListarMultas_idNegativo(t *testing.T) {
	c := clienteSemRede(t)

	_, err := c.ListarMultas(context.Background(), apiclient.FiltroMultas{ClienteID: -1})
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestCriarMulta_normalizaData(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		payload := corpoJSON(t, r)
		require.Equal(t, float64(3), payload["ReservaID"])
		require.Equal(t, 25.5, payload["Valor"])
		require.Equal(t, "15/03/2024", payload["DataVencimento"])

		return resposta(http.StatusCreated, `{}`), nil
	})

	mensagem, err := c.CriarMulta(context.Background(), 3, decimal.NewFromFloat(25.5), "2024-03-15")
	require.NoError(t, err)
	require.Equal(t, "Multa registrada com sucesso!", mensagem)
}

func TestCriarMulta_valorNaoPositivo(t *testing.T) {
	c := clienteSemRede(t)

	_, err := c.CriarMulta(context.Background(), 3, decimal.Zero, "15/03/2024")
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "Valor deve ser maior que zero")
}

func TestPagarMulta_dataPadraoHoje(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/multas/7/pagar", r.URL.Path)
		payload := corpoJSON(t, r)
		require.Regexp(t, `^\d{2}/\d{2}/\d{4}$`, payload["DataPagamento"])

		return resposta(http.StatusOK, `{}`), nil
	})

	mensagem, err := c.PagarMulta(context.Background(), 7, "")
	require.NoError(t, err)
	require.Equal(t, "Multa marcada como paga!", mensagem)
}
