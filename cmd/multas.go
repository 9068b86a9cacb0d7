package main

import (
	"biblioteca/internal/config"
	"biblioteca/internal/multas"
	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// multasCommand constructs the 'multas' subcommand: listing fines with
// derived financial data, by-client statements, manual creation and payment.
func multasCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multas",
		Short: "Manages fines",
	}

	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lists fines with optional filters",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			clienteID, _ := cmd.Flags().GetInt("cliente")
			reservaID, _ := cmd.Flags().GetInt("reserva")
			status, _ := cmd.Flags().GetString("status")
			vencidas, _ := cmd.Flags().GetBool("vencidas")

			controlador := multas.New(novoCliente(ctx, cfg))
			itens, err := controlador.ListarMultas(ctx, apiclient.FiltroMultas{
				ClienteID: clienteID,
				ReservaID: reservaID,
				Status:    status,
				Vencidas:  vencidas,
			})
			if err != nil {
				logger.Fatal(ctx, "could not list fines", zap.Error(err))
			}
			if err := imprimir(itens); err != nil {
				logger.Fatal(ctx, "could not render results", zap.Error(err))
			}
		},
	}
	listar.Flags().Int("cliente", 0, "Filter by client ID")
	listar.Flags().Int("reserva", 0, "Filter by reservation ID")
	listar.Flags().String("status", "", "Filter by status (pendente, paga)")
	listar.Flags().Bool("vencidas", false, "Only overdue fines")

	extrato := &cobra.Command{
		Use:   "extrato [cpf]",
		Short: "Shows a client's fines and financial summary",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			controlador := multas.New(novoCliente(ctx, cfg))
			extrato, err := controlador.ListarMultasPorCPF(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not load client statement", zap.Error(err))
			}
			if err := imprimir(extrato); err != nil {
				logger.Fatal(ctx, "could not render results", zap.Error(err))
			}
		},
	}

	registrar := &cobra.Command{
		Use:   "registrar",
		Short: "Creates a fine manually",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			reservaID, _ := cmd.Flags().GetInt("reserva")
			valor, _ := cmd.Flags().GetString("valor")
			vencimento, _ := cmd.Flags().GetString("vencimento")

			controlador := multas.New(novoCliente(ctx, cfg))
			mensagem, err := controlador.RegistrarMulta(ctx, reservaID, valor, vencimento)
			if err != nil {
				logger.Fatal(ctx, "could not create fine", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}
	registrar.Flags().Int("reserva", 0, "Reservation ID")
	registrar.Flags().String("valor", "", "Fine value (e.g. \"R$ 25,50\")")
	registrar.Flags().String("vencimento", "", "Due date (DD/MM/YYYY)")
	_ = registrar.MarkFlagRequired("reserva")
	_ = registrar.MarkFlagRequired("valor")
	_ = registrar.MarkFlagRequired("vencimento")

	pagar := &cobra.Command{
		Use:   "pagar",
		Short: "Pays a fine",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			multaID, _ := cmd.Flags().GetInt("id")
			data, _ := cmd.Flags().GetString("data")

			controlador := multas.New(novoCliente(ctx, cfg))
			mensagem, err := controlador.RegistrarPagamento(ctx, multaID, data)
			if err != nil {
				logger.Fatal(ctx, "could not pay fine", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}
	pagar.Flags().Int("id", 0, "Fine ID")
	pagar.Flags().String("data", "", "Payment date (DD/MM/YYYY); empty means today")
	_ = pagar.MarkFlagRequired("id")

	cmd.AddCommand(listar, extrato, registrar, pagar)

	return cmd
}
