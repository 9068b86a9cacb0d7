package main

import (
	"biblioteca/internal/cadastro"
	"biblioteca/internal/config"
	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cadastroCommand constructs the 'cadastro' subcommand for registering
// clients and reservations from flag values.
func cadastroCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadastro",
		Short: "Registers clients and reservations",
	}

	cmd.AddCommand(cadastroClienteCommand(cfg), cadastroLivroCommand(cfg), cadastroReservaCommand(cfg))

	return cmd
}

func cadastroLivroCommand(cfg *config.Config) *cobra.Command {
	var dados apiclient.CadastrarLivroRequest

	cmd := &cobra.Command{
		Use:   "livro",
		Short: "Registers a new book",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			mensagem, err := novoCliente(ctx, cfg).CadastrarLivro(ctx, dados)
			if err != nil {
				logger.Fatal(ctx, "book registration failed", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}

	cmd.Flags().StringVar(&dados.NomeLivro, "nome", "", "Book title")
	cmd.Flags().StringVar(&dados.Autor, "autor", "", "Author")
	cmd.Flags().StringVar(&dados.Editora, "editora", "", "Publisher")
	cmd.Flags().StringVar(&dados.DataPublicacao, "publicacao", "", "Publication date")
	cmd.Flags().StringVar(&dados.Idioma, "idioma", "", "Language")
	cmd.Flags().IntVar(&dados.QuantidadePaginas, "paginas", 0, "Page count")
	cmd.Flags().StringVar(&dados.NomeGenero, "genero", "", "Genre name")
	cmd.Flags().IntVar(&dados.QuantidadeDisponivel, "disponivel", 0, "Copies available")
	_ = cmd.MarkFlagRequired("nome")

	return cmd
}

func cadastroClienteCommand(cfg *config.Config) *cobra.Command {
	var dados cadastro.DadosCliente

	cmd := &cobra.Command{
		Use:   "cliente",
		Short: "Registers a new client",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			controlador := cadastro.New(novoCliente(ctx, cfg))
			mensagem, err := controlador.CadastrarCliente(ctx, dados)
			if err != nil {
				logger.Fatal(ctx, "client registration failed", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}

	cmd.Flags().StringVar(&dados.Nome, "nome", "", "First name")
	cmd.Flags().StringVar(&dados.Sobrenome, "sobrenome", "", "Last name")
	cmd.Flags().StringVar(&dados.CPF, "cpf", "", "CPF, with or without punctuation")
	cmd.Flags().StringVar(&dados.DataNascimento, "nascimento", "", "Birth date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&dados.DataAfiliacao, "afiliacao", "", "Affiliation date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&dados.CEP, "cep", "", "Postal code")
	cmd.Flags().StringVar(&dados.Rua, "rua", "", "Street")
	cmd.Flags().StringVar(&dados.Numero, "numero", "", "Street number")
	cmd.Flags().StringVar(&dados.Bairro, "bairro", "", "District")
	cmd.Flags().StringVar(&dados.Cidade, "cidade", "", "City")
	cmd.Flags().StringVar(&dados.Estado, "estado", "", "State")
	_ = cmd.MarkFlagRequired("nome")

	return cmd
}

func cadastroReservaCommand(cfg *config.Config) *cobra.Command {
	var dados cadastro.DadosReserva

	cmd := &cobra.Command{
		Use:   "reserva",
		Short: "Registers a new reservation",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			controlador := cadastro.New(novoCliente(ctx, cfg))
			mensagem, err := controlador.CadastrarReserva(ctx, dados)
			if err != nil {
				logger.Fatal(ctx, "reservation registration failed", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}

	cmd.Flags().StringVar(&dados.CPFReserva, "cpf", "", "Client CPF")
	cmd.Flags().StringVar(&dados.NomeLivro, "livro", "", "Book title")
	cmd.Flags().StringVar(&dados.DataRetirada, "retirada", "", "Pickup date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&dados.DataVolta, "volta", "", "Return date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&dados.QntdLivro, "quantidade", "1", "Number of copies")
	cmd.Flags().StringVar(&dados.Observacao, "observacao", "", "Free-text note")
	_ = cmd.MarkFlagRequired("livro")

	return cmd
}
