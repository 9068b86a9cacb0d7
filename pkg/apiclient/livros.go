package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"biblioteca/pkg/domain"
	"biblioteca/pkg/serrors"
)

// CadastrarLivroRequest carries the data for a new book.
type CadastrarLivroRequest struct {
	NomeLivro            string `json:"NomeLivro"`
	Autor                string `json:"Autor"`
	Editora              string `json:"Editora"`
	DataPublicacao       string `json:"DataPublicacao"`
	Idioma               string `json:"Idioma"`
	QuantidadePaginas    int    `json:"QuantidadePaginas"`
	NomeGenero           string `json:"NomeGenero"`
	QuantidadeDisponivel int    `json:"QuantidadeDisponivel"`
}

// BuscarLivroPorNome searches books by title.
func (c *Client) BuscarLivroPorNome(ctx context.Context, nome string) ([]domain.Livro, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, serrors.With(serrors.ErrValidation, "Nome do livro não pode ser vazio")
	}

	payload, err := c.Get(ctx, "/livro", url.Values{"NomeLivro": {strings.TrimSpace(nome)}})
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Livro](payload)
}

// BuscarLivrosPorAutor searches books by author name.
func (c *Client) BuscarLivrosPorAutor(ctx context.Context, autor string) ([]domain.Livro, error) {
	if strings.TrimSpace(autor) == "" {
		return nil, serrors.With(serrors.ErrValidation, "Nome do autor não pode ser vazio")
	}

	payload, err := c.Get(ctx, "/livro/autor", url.Values{"NomeAutor": {strings.TrimSpace(autor)}})
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Livro](payload)
}

// BuscarLivrosPorGenero searches books by genre name.
func (c *Client) BuscarLivrosPorGenero(ctx context.Context, genero string) ([]domain.Livro, error) {
	if strings.TrimSpace(genero) == "" {
		return nil, serrors.With(serrors.ErrValidation, "Gênero não pode ser vazio")
	}

	payload, err := c.Get(ctx, "/genero", url.Values{"NomeGenero": {strings.TrimSpace(genero)}})
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Livro](payload)
}

// ListarGeneros fetches the genre catalog.
func (c *Client) ListarGeneros(ctx context.Context) ([]domain.Genero, error) {
	payload, err := c.Get(ctx, "/genero", nil)
	if err != nil {
		return nil, err
	}

	return ExtrairLista[domain.Genero](payload)
}

// BuscarLivroPorID fetches a single book.
func (c *Client) BuscarLivroPorID(ctx context.Context, livroID int) (domain.Livro, error) {
	if livroID <= 0 {
		return domain.Livro{}, serrors.With(serrors.ErrValidation, "ID do livro não pode ser vazio")
	}

	payload, err := c.Get(ctx, fmt.Sprintf("/livro/%d", livroID), nil)
	if err != nil {
		return domain.Livro{}, err
	}

	return ExtrairObjeto[domain.Livro](payload)
}

// CadastrarLivro registers a new book, returning the user-facing success
// message.
func (c *Client) CadastrarLivro(ctx context.Context, req CadastrarLivroRequest) (string, error) {
	req.NomeLivro = strings.TrimSpace(req.NomeLivro)
	req.Autor = strings.TrimSpace(req.Autor)
	req.Editora = strings.TrimSpace(req.Editora)
	req.DataPublicacao = strings.TrimSpace(req.DataPublicacao)
	req.Idioma = strings.TrimSpace(req.Idioma)
	req.NomeGenero = strings.TrimSpace(req.NomeGenero)

	obrigatorios := []struct {
		campo string
		vazio bool
	}{
		{"NomeLivro", req.NomeLivro == ""},
		{"Autor", req.Autor == ""},
		{"Editora", req.Editora == ""},
		{"DataPublicacao", req.DataPublicacao == ""},
		{"Idioma", req.Idioma == ""},
		{"QuantidadePaginas", req.QuantidadePaginas == 0},
		{"NomeGenero", req.NomeGenero == ""},
		{"QuantidadeDisponivel", req.QuantidadeDisponivel == 0},
	}
	for _, item := range obrigatorios {
		if item.vazio {
			return "", serrors.With(serrors.ErrValidation, "Campo obrigatório ausente: %s", item.campo)
		}
	}
	if req.QuantidadePaginas < 0 {
		return "", serrors.With(serrors.ErrValidation, "QuantidadePaginas deve ser um número inteiro")
	}
	if req.QuantidadeDisponivel < 0 {
		return "", serrors.With(serrors.ErrValidation, "QuantidadeDisponivel deve ser um número inteiro")
	}

	if _, err := c.Post(ctx, "/livro", req); err != nil {
		return "", err
	}

	return "Livro cadastrado com sucesso!", nil
}

// AtualizarLivro replaces a book's data via PUT.
func (c *Client) AtualizarLivro(ctx context.Context, livroID int, dados map[string]any) (string, error) {
	if livroID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID do livro inválido")
	}
	if len(dados) == 0 {
		return "", serrors.With(serrors.ErrValidation, "Dados para atualização não podem ser vazios")
	}

	if _, err := c.Put(ctx, fmt.Sprintf("/livro/%d", livroID), dados); err != nil {
		return "", err
	}

	return "Livro atualizado com sucesso!", nil
}

// DeletarLivro removes a book.
func (c *Client) DeletarLivro(ctx context.Context, livroID int) (string, error) {
	if livroID <= 0 {
		return "", serrors.With(serrors.ErrValidation, "ID do livro inválido")
	}

	if _, err := c.Delete(ctx, fmt.Sprintf("/livro/%d", livroID)); err != nil {
		return "", err
	}

	return "Livro deletado com sucesso!", nil
}
