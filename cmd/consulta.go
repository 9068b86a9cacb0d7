package main

import (
	"context"

	"biblioteca/internal/config"
	"biblioteca/internal/consulta"
	"biblioteca/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consultaCommand constructs the 'consulta' subcommand that runs searches
// against the library API and prints the results as JSON.
func consultaCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consulta",
		Short: "Searches clients and books",
	}

	cmd.AddCommand(
		consultaSub(cfg, "cliente [nome]", "Searches clients by name",
			func(c *consulta.Controller, ctx context.Context, termo string) (any, error) {
				return c.BuscarClientePorNome(ctx, termo)
			}),
		consultaSub(cfg, "estado [uf]", "Searches clients by address state",
			func(c *consulta.Controller, ctx context.Context, termo string) (any, error) {
				return c.BuscarClientesPorEstado(ctx, termo)
			}),
		consultaSub(cfg, "livro [nome]", "Searches books by title",
			func(c *consulta.Controller, ctx context.Context, termo string) (any, error) {
				return c.BuscarLivroPorNome(ctx, termo)
			}),
		consultaSub(cfg, "autor [nome]", "Searches books by author",
			func(c *consulta.Controller, ctx context.Context, termo string) (any, error) {
				return c.BuscarLivroPorAutor(ctx, termo)
			}),
		consultaSub(cfg, "genero [nome]", "Searches books by genre",
			func(c *consulta.Controller, ctx context.Context, termo string) (any, error) {
				return c.BuscarLivrosPorGenero(ctx, termo)
			}),
	)

	return cmd
}

func consultaSub(cfg *config.Config,
	use, short string,
	buscar func(*consulta.Controller, context.Context, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			termo := ""
			if len(args) > 0 {
				termo = args[0]
			}

			controlador := consulta.New(novoCliente(ctx, cfg))
			resultado, err := buscar(controlador, ctx, termo)
			if err != nil {
				logger.Fatal(ctx, "search failed", zap.Error(err))
			}
			if err := imprimir(resultado); err != nil {
				logger.Fatal(ctx, "could not render results", zap.Error(err))
			}
		},
	}
}
