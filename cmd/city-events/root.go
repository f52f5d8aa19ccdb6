package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/localpulse/city-events/internal/aggregator"
	"github.com/localpulse/city-events/internal/config"
	"github.com/localpulse/city-events/internal/digest"
	"github.com/localpulse/city-events/internal/logger"
	"github.com/localpulse/city-events/internal/server"
)

var (
	flagPort   string
	flagCity   string
	flagFormat string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city-events",
		Short: "Aggregate local event listings into a weekend digest",
		Long: `Scrapes local event listings from multiple web sources, normalizes
and categorizes them, and serves the results as an interactive digest
with PDF and iCalendar downloads.`,
	}

	cmd.AddCommand(newServeCmd(), newSearchCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagPort, "port", "", "Listen port (overrides SERVICE_PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	if cfg.ServiceEnvironment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	port := cfg.ServicePort
	if flagPort != "" {
		port = flagPort
	}

	handler := server.New(aggregator.New(log), log, cfg.DefaultCity)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Info("starting server",
		zap.String("port", port),
		zap.String("environment", cfg.ServiceEnvironment))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one aggregation and print the result",
		RunE:  runSearch,
	}
	cmd.Flags().StringVar(&flagCity, "city", "", "City to search (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.MarkFlagRequired("city")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	city := strings.TrimSpace(flagCity)
	if city == "" {
		return fmt.Errorf("--city is required")
	}
	if flagFormat != "text" && flagFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	log := zap.NewNop()
	events := aggregator.New(log).Aggregate(context.Background(), city)

	if flagFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"city":         city,
			"events":       events,
			"digest":       digest.Build(events),
			"total_events": len(events),
		})
	}

	fmt.Println(digest.Build(events))
	fmt.Printf("\n%d event(s) total:\n", len(events))
	for _, evt := range events {
		fmt.Printf("- %s [%s] %s | %s\n", evt.Title, evt.Category, evt.DateTime, evt.Location)
	}
	return nil
}
