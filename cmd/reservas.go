package main

import (
	"biblioteca/internal/config"
	"biblioteca/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reservasCommand constructs the 'reservas' subcommand covering the
// reservation lifecycle: listing, lookup, finish, cancel and returns.
func reservasCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservas",
		Short: "Manages the reservation lifecycle",
	}

	listar := &cobra.Command{
		Use:   "listar",
		Short: "Lists reservations, optionally filtered by status",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			status, _ := cmd.Flags().GetString("status")

			cliente := novoCliente(ctx, cfg)
			reservas, err := cliente.ListarReservas(ctx, status)
			if err != nil {
				logger.Fatal(ctx, "could not list reservations", zap.Error(err))
			}
			if err := imprimir(reservas); err != nil {
				logger.Fatal(ctx, "could not render results", zap.Error(err))
			}
		},
	}
	listar.Flags().String("status", "todas", "Filter: todas, ativa, finalizada or cancelada")

	obter := &cobra.Command{
		Use:   "obter",
		Short: "Shows one reservation",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id, _ := cmd.Flags().GetInt("id")

			cliente := novoCliente(ctx, cfg)
			reserva, err := cliente.ObterReservaPorID(ctx, id)
			if err != nil {
				logger.Fatal(ctx, "could not load reservation", zap.Error(err))
			}
			if err := imprimir(reserva); err != nil {
				logger.Fatal(ctx, "could not render results", zap.Error(err))
			}
		},
	}
	obter.Flags().Int("id", 0, "Reservation ID")
	_ = obter.MarkFlagRequired("id")

	finalizar := &cobra.Command{
		Use:   "finalizar",
		Short: "Marks a reservation as returned",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id, _ := cmd.Flags().GetInt("id")
			entrega, _ := cmd.Flags().GetString("entrega")

			cliente := novoCliente(ctx, cfg)
			mensagem, err := cliente.FinalizarReserva(ctx, id, entrega)
			if err != nil {
				logger.Fatal(ctx, "could not finish reservation", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}
	finalizar.Flags().Int("id", 0, "Reservation ID")
	finalizar.Flags().String("entrega", "", "Actual return date (DD/MM/YYYY or YYYY-MM-DD)")
	_ = finalizar.MarkFlagRequired("id")
	_ = finalizar.MarkFlagRequired("entrega")

	cancelar := &cobra.Command{
		Use:   "cancelar",
		Short: "Cancels a reservation",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id, _ := cmd.Flags().GetInt("id")

			cliente := novoCliente(ctx, cfg)
			mensagem, err := cliente.CancelarReserva(ctx, id)
			if err != nil {
				logger.Fatal(ctx, "could not cancel reservation", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}
	cancelar.Flags().Int("id", 0, "Reservation ID")
	_ = cancelar.MarkFlagRequired("id")

	devolucao := &cobra.Command{
		Use:   "devolucao",
		Short: "Records a book return",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			id, _ := cmd.Flags().GetInt("id")
			data, _ := cmd.Flags().GetString("data")

			cliente := novoCliente(ctx, cfg)
			mensagem, err := cliente.RegistrarDevolucao(ctx, id, data)
			if err != nil {
				logger.Fatal(ctx, "could not record return", zap.Error(err))
			}
			logger.Info(ctx, mensagem)
		},
	}
	devolucao.Flags().Int("id", 0, "Reservation ID")
	devolucao.Flags().String("data", "", "Actual return date (YYYY-MM-DD)")
	_ = devolucao.MarkFlagRequired("id")
	_ = devolucao.MarkFlagRequired("data")

	cmd.AddCommand(listar, obter, finalizar, cancelar, devolucao)

	return cmd
}
