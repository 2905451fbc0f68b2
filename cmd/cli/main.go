// Package main provides the CLI tool for the research-service.
// Uses Cobra for command parsing — Cobra is the standard Go CLI framework
// (used by kubectl, docker, hugo, and many others).
//
// Run with: go run ./cmd/cli company "Acme Corp"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleveque/research-service/internal/config"
	"github.com/fleveque/research-service/internal/llm"
	"github.com/fleveque/research-service/internal/model"
	"github.com/fleveque/research-service/internal/research"
)

// newClient builds the model client from config. Tests replace it with a stub.
var newClient = llm.New

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd creates the root command. Cobra builds a tree of commands:
// research-cli company "Acme Corp"
// research-cli person "Jane Doe" --company "Acme Corp"
// research-cli market "Electric Vehicles"
func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "research-cli",
		Short: "Run company, person and market research from the terminal",
		// Errors are printed by Cobra; usage only for flag/arg mistakes.
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("RESEARCH_CONFIG_PATH"), "Path to a YAML config file")

	root.AddCommand(
		companyCmd(&configPath),
		personCmd(&configPath),
		marketCmd(&configPath),
	)
	return root
}

func companyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "company <name>",
		Short: "Nine-section company analysis",
		Args:  cobra.MinimumNArgs(1),
		// RunE returns an error (vs Run which doesn't). Cobra prints the error automatically.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResearch(cmd, *configPath, model.KindCompany, map[string]any{
				"company": strings.Join(args, " "),
			})
		},
	}
}

func personCmd(configPath *string) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "person <name> --company <company>",
		Short: "Professional profile of a person at a company",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResearch(cmd, *configPath, model.KindPerson, map[string]any{
				"person":  strings.Join(args, " "),
				"company": company,
			})
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the person works at (required)")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func marketCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "market <name>",
		Short: "Eight-section market analysis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResearch(cmd, *configPath, model.KindMarket, map[string]any{
				"market": strings.Join(args, " "),
			})
		},
	}
}

// runResearch goes through the same validation and research service as the
// HTTP endpoints and prints the markdown report to stdout.
func runResearch(cmd *cobra.Command, configPath string, kind model.Kind, fields map[string]any) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Always use development mode for CLI; logs go to stderr, the report to stdout.
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req, err := model.ParseRequest(kind, fields)
	if err != nil {
		return err
	}

	client, err := newClient(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}

	svc := research.NewService(client, logger,
		research.WithDegradedPersonErrors(cfg.Research.DegradePersonErrors),
	)

	// Ctrl+C stops the CLI; unlike the server, there is no caller to outlive.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("researching",
		zap.String("kind", string(kind)),
		zap.String("provider", client.ProviderName()),
		zap.String("model", client.ModelName()),
	)

	text, err := svc.Research(ctx, req)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
