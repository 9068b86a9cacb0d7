package consulta_test

import (
	"context"
	"net/url"
	"testing"

	"biblioteca/internal/consulta"

	"github.com/stretchr/testify/require"
)

// transporteFake records the last GET and returns a canned payload.
type transporteFake struct {
	endpoint string
	query    url.Values
	payload  map[string]any
	err      error
}

func (f *transporteFake) Get(_ context.Context, endpoint string, query url.Values) (map[string]any, error) {
	f.endpoint = endpoint
	f.query = query

	return f.payload, f.err
}

func (f *transporteFake) Post(context.Context, string, any) (map[string]any, error) {
	return nil, nil
}

func (f *transporteFake) Put(context.Context, string, any) (map[string]any, error) {
	return nil, nil
}

func (f *transporteFake) Patch(context.Context, string, any) (map[string]any, error) {
	return nil, nil
}

func (f *transporteFake) Delete(context.Context, string) (map[string]any, error) {
	return nil, nil
}

func TestBuscarClientePorNome_sanitizaTermo(t *testing.T) {
	fake := &transporteFake{payload: map[string]any{"data": []any{map[string]any{"ClienteID": float64(1), "Nome": "Ana"}}}}
	c := consulta.New(fake)

	clientes, err := c.BuscarClientePorNome(context.Background(), "Ana'; DROP TABLE clientes--")
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	require.Equal(t, "/cliente", fake.endpoint)

	termo := fake.query.Get("Nome")
	require.NotContains(t, termo, ";")
	require.NotContains(t, termo, "--")
	require.Equal(t, "Ana' DROP TABLE clientes", termo)
}

func TestBuscarClientePorNome_vazioListaTodos(t *testing.T) {
	fake := &transporteFake{payload: map[string]any{"data": []any{}}}
	c := consulta.New(fake)

	_, err := c.BuscarClientePorNome(context.Background(), "   ")
	require.NoError(t, err)
	require.Nil(t, fake.query)
}

func TestBuscarLivroPorAutor_montaParametro(t *testing.T) {
	fake := &transporteFake{payload: map[string]any{"data": []any{map[string]any{"LivroID": float64(2), "NomeLivro": "Quincas Borba"}}}}
	c := consulta.New(fake)

	livros, err := c.BuscarLivroPorAutor(context.Background(), "Machado de Assis")
	require.NoError(t, err)
	require.Equal(t, "/livro/autor", fake.endpoint)
	require.Equal(t, "Machado de Assis", fake.query.Get("NomeAutor"))
	require.Len(t, livros, 1)
	require.Equal(t, "Quincas Borba", livros[0].Titulo())
}

func TestBuscarLivrosPorGenero_objetoUnico(t *testing.T) {
	fake := &transporteFake{payload: map[string]any{"dados": map[string]any{"LivroID": float64(3), "NomeLivro": "Vidas Secas"}}}
	c := consulta.New(fake)

	livros, err := c.BuscarLivrosPorGenero(context.Background(), "Romance")
	require.NoError(t, err)
	require.Equal(t, "/genero", fake.endpoint)
	require.Len(t, livros, 1)
}
