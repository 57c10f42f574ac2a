package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mortgage-rates/internal/adapter/middleware"
	"mortgage-rates/internal/adapter/repository/mysql"
	"mortgage-rates/internal/config"
	"mortgage-rates/internal/infrastructure/db"
	"mortgage-rates/internal/logging"
	"mortgage-rates/internal/seed"
)

var (
	fixturePath string
	migrate     bool
	subject     string
	tokenTTL    time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Load lenders and rate sheets from a YAML fixture",
		Long: `Reads a catalog fixture (lenders with nested rates) and inserts it in a
single transaction. Lenders that carry a lender_id already present in the
database are skipped, so a fixture can be applied more than once.

Connection settings come from the same MYSQL_* environment as the API.`,
		SilenceUsage: true,
		RunE:         runSeed,
	}
	root.Flags().StringVarP(&fixturePath, "file", "f", "catalog.yaml", "path to the YAML fixture")
	root.Flags().BoolVar(&migrate, "migrate", false, "create or update tables before seeding")

	token := &cobra.Command{
		Use:          "token",
		Short:        "Print an admin bearer token signed with ADMIN_JWT_SECRET",
		SilenceUsage: true,
		RunE:         runToken,
	}
	token.Flags().StringVar(&subject, "subject", "", "admin identity to embed (required)")
	token.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token lifetime")
	_ = token.MarkFlagRequired("subject")
	root.AddCommand(token)

	return root
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.AppEnv)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	fixture, err := seed.Load(f)
	if err != nil {
		return err
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.IsDevelopment(), log)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	if migrate {
		if err := db.AutoMigrate(gdb); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	sum, err := seed.Apply(ctx, mysql.NewGormUoW(gdb), fixture, log)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("seed complete",
		zap.String("file", fixturePath),
		zap.Int("lenders_created", sum.LendersCreated),
		zap.Int("lenders_skipped", sum.LendersSkipped),
		zap.Int("rates_created", sum.RatesCreated),
	)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.AdminJWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is not set")
	}
	tok, err := middleware.SignAdminToken([]byte(cfg.AdminJWTSecret), subject, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
