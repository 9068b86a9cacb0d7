package domain

// Livro is a book record. Some endpoints return the title as NomeLivro,
// others as Nome; Titulo resolves that.
type Livro struct {
	LivroID              int    `json:"LivroID"`
	NomeLivro            string `json:"NomeLivro"`
	Nome                 string `json:"Nome"`
	Autor                string `json:"Autor"`
	Editora              string `json:"Editora"`
	DataPublicacao       string `json:"DataPublicacao"`
	Idioma               string `json:"Idioma"`
	QuantidadePaginas    int    `json:"QuantidadePaginas"`
	NomeGenero           string `json:"NomeGenero"`
	QuantidadeDisponivel int    `json:"QuantidadeDisponivel"`
}

// Titulo returns the book title regardless of which field the API used.
func (l Livro) Titulo() string {
	if l.NomeLivro != "" {
		return l.NomeLivro
	}

	return l.Nome
}

// Genero is an entry of the genre catalog.
type Genero struct {
	GeneroID   int    `json:"GeneroID"`
	NomeGenero string `json:"NomeGenero"`
}
