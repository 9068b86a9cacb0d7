// Package consulta implements the search use cases on top of the API client,
// sanitizing operator input before it reaches the query string.
package consulta

import (
	"context"
	"net/url"
	"strings"

	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/domain"
	"biblioteca/pkg/validator"
)

// Controller routes search requests. A blank search term means "list all":
// the query parameter is simply omitted.
type Controller struct {
	transporte apiclient.Transport
}

// New constructs a Controller on top of the given transport.
func New(transporte apiclient.Transport) *Controller {
	return &Controller{transporte: transporte}
}

// BuscarClientePorNome searches clients by name.
func (c *Controller) BuscarClientePorNome(ctx context.Context, nome string) ([]domain.Cliente, error) {
	payload, err := c.transporte.Get(ctx, "/cliente", parametro("Nome", nome))
	if err != nil {
		return nil, err
	}

	return apiclient.ExtrairLista[domain.Cliente](payload)
}

// BuscarClientesPorEstado searches clients by address state.
func (c *Controller) BuscarClientesPorEstado(ctx context.Context, estado string) ([]domain.Cliente, error) {
	payload, err := c.transporte.Get(ctx, "/endereco", parametro("Estado", estado))
	if err != nil {
		return nil, err
	}

	return apiclient.ExtrairLista[domain.Cliente](payload)
}

// BuscarLivroPorNome searches books by title.
func (c *Controller) BuscarLivroPorNome(ctx context.Context, nomeLivro string) ([]domain.Livro, error) {
	payload, err := c.transporte.Get(ctx, "/livro", parametro("NomeLivro", nomeLivro))
	if err != nil {
		return nil, err
	}

	return apiclient.ExtrairLista[domain.Livro](payload)
}

// BuscarLivroPorAutor searches books by author.
func (c *Controller) BuscarLivroPorAutor(ctx context.Context, nomeAutor string) ([]domain.Livro, error) {
	payload, err := c.transporte.Get(ctx, "/livro/autor", parametro("NomeAutor", nomeAutor))
	if err != nil {
		return nil, err
	}

	return apiclient.ExtrairLista[domain.Livro](payload)
}

// BuscarLivrosPorGenero searches books by genre.
func (c *Controller) BuscarLivrosPorGenero(ctx context.Context, nomeGenero string) ([]domain.Livro, error) {
	payload, err := c.transporte.Get(ctx, "/genero", parametro("NomeGenero", nomeGenero))
	if err != nil {
		return nil, err
	}

	return apiclient.ExtrairLista[domain.Livro](payload)
}

// parametro builds the single-entry query for a search term, sanitized. Blank
// input yields nil so the endpoint lists everything.
func parametro(chave, valor string) url.Values {
	if strings.TrimSpace(valor) == "" {
		return nil
	}

	return url.Values{chave: {validator.SanitizarEntrada(valor)}}
}
