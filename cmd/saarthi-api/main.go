package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/saarthi-api/internal/app"
	"github.com/noah-isme/saarthi-api/pkg/cache"
	"github.com/noah-isme/saarthi-api/pkg/config"
	"github.com/noah-isme/saarthi-api/pkg/logger"
)

// @title Saarthi API
// @version 1.0.0
// @BasePath /api
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "saarthi-api",
		Short:        "Saarthi tutoring and student analytics API",
		SilenceUsage: true,
	}

	serve := serveCmd()
	root.AddCommand(serve, routesCmd())

	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.Int("port", 0, "HTTP listen port (overrides PORT)")
	f.String("env", "", "Runtime environment (overrides ENV)")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered HTTP routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg.SeedDemoData = false

			a, err := app.New(cmd.Context(), cfg, zap.NewNop(), app.Options{})
			if err != nil {
				return err
			}
			for _, route := range a.Engine.Routes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", route.Method, route.Path)
			}
			return nil
		},
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if env, _ := cmd.Flags().GetString("env"); env != "" {
		cfg.Env = env
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, analytics cache disabled", zap.Error(err))
		redisClient = nil
	}

	a, err := app.New(ctx, cfg, log, app.Options{Redis: redisClient})
	if err != nil {
		log.Error("failed to build application", zap.Error(err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("failed to close cache", zap.Error(err))
		}
	}()

	if err := a.Serve(ctx, fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
