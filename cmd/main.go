// Package main provides the CLI entrypoint for the library management
// client. It wires subcommands (consulta, cadastro, reservas, multas), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"biblioteca/internal/config"
	"biblioteca/pkg/apiclient"
	"biblioteca/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// novoCliente builds the API client from configuration and performs the
// initial login when credentials are configured. Without credentials the
// client stays anonymous and protected endpoints will answer 401.
func novoCliente(ctx context.Context, cfg *config.Config) *apiclient.Client {
	cliente := apiclient.New(apiclient.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Email:   cfg.API.Email,
		Senha:   cfg.API.Senha,
	})

	if cfg.API.Email != "" && cfg.API.Senha != "" {
		if err := cliente.ExecutarLogin(ctx); err != nil {
			logger.Fatal(ctx, "could not authenticate against the API", zap.Error(err))
		}
	}

	return cliente
}

// imprimir renders the command result as indented JSON on stdout.
func imprimir(valor any) error {
	saida, err := json.MarshalIndent(valor, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(saida)) //nolint: forbidigo

	return nil
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "biblioteca",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path")

	configPath := flag.String("c", "", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		consultaCommand(cfg),
		cadastroCommand(cfg),
		reservasCommand(cfg),
		multasCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
