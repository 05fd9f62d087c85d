package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/internal/adapters/http"
	"github.com/kolamkit/kolam/internal/config"
	"github.com/kolamkit/kolam/pkg/adapters/file"
	"github.com/kolamkit/kolam/pkg/adapters/memory"
	"github.com/kolamkit/kolam/pkg/adapters/redis"
	"github.com/kolamkit/kolam/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kolam HTTP server",
	Long: `Starts the generation engine as an HTTP server, exposing a JSON API
for generating, storing and rendering kolam patterns.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")
		storeKind, _ := cmd.Flags().GetString("store")
		storeDir, _ := cmd.Flags().GetString("store-dir")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")

		cfg, err := config.Load(configPath)
		if err != nil {
			fail(err)
		}

		// Flags win over the config file.
		if cmd.Flags().Changed("port") {
			cfg.Listen = ":" + port
		}
		if cmd.Flags().Changed("store") {
			cfg.Store = storeKind
		}
		if cmd.Flags().Changed("store-dir") {
			cfg.File.Dir = storeDir
		}
		if cmd.Flags().Changed("redis-addr") {
			cfg.Redis.Address = redisAddr
		}
		if err := cfg.Validate(); err != nil {
			fail(err)
		}

		logger := cmdLogger(cmd)

		var registry *prometheus.Registry
		genOpts := []kolam.Option{kolam.WithLogger(logger)}
		if cfg.Metrics {
			registry = prometheus.NewRegistry()
			genOpts = append(genOpts, kolam.WithMetrics(registry))
		}

		gen, err := kolam.New(genOpts...)
		if err != nil {
			fail(err)
		}

		var store ports.PatternStore
		switch cfg.Store {
		case config.StoreRedis:
			ttl, err := cfg.Redis.TTLDuration()
			if err != nil {
				fail(err)
			}
			var opts []redis.Option
			if ttl > 0 {
				opts = append(opts, redis.WithTTL(ttl))
			}
			rs := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, opts...)
			defer rs.Close()
			store = rs
			logger.Info("using redis pattern store", "address", cfg.Redis.Address)
		case config.StoreFile:
			store = file.NewStore(cfg.File.Dir)
			logger.Info("using file pattern store", "dir", cfg.File.Dir)
		default:
			store = memory.NewStore()
			logger.Info("using in-memory pattern store")
		}

		srv := http.New(http.Config{
			Addr:        cfg.Listen,
			Logger:      logger,
			Generator:   gen,
			Store:       store,
			Palette:     cfg.Palette,
			CORSOrigins: cfg.CORSOrigins,
			Registry:    registry,
		})

		// Blocking until shutdown signal or server error.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Starting Kolam Server on %s\n", cfg.Listen)
		if err := srv.Start(ctx); err != nil {
			fail(err)
		}
		fmt.Println("Kolam Server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("config", "", "Path to a YAML or JSON config file")
	serveCmd.Flags().String("store", "", "Pattern store backend: 'memory', 'file' or 'redis'")
	serveCmd.Flags().String("store-dir", "", "Directory for the file store backend")
	serveCmd.Flags().String("redis-addr", "", "Redis address (host:port)")
}
