package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"sportsgate-hq/sportsgate/pkg/audit"
	"sportsgate-hq/sportsgate/pkg/audit/recorder"
	"sportsgate-hq/sportsgate/pkg/audit/retention"
	"sportsgate-hq/sportsgate/pkg/audit/storage"
	"sportsgate-hq/sportsgate/pkg/cli"
	"sportsgate-hq/sportsgate/pkg/config"
	"sportsgate-hq/sportsgate/pkg/dispatch"
	"sportsgate-hq/sportsgate/pkg/limits/ratelimit"
	"sportsgate-hq/sportsgate/pkg/operations"
	"sportsgate-hq/sportsgate/pkg/providerfactory"
	"sportsgate-hq/sportsgate/pkg/providers"
	"sportsgate-hq/sportsgate/pkg/retry"
	"sportsgate-hq/sportsgate/pkg/server"
	"sportsgate-hq/sportsgate/pkg/telemetry/logging"
	"sportsgate-hq/sportsgate/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the SportsGate proxy server",
	Long: `Start the SportsGate proxy server with the specified configuration.

The server listens on the configured address and dispatches typed sports
data operations to the upstream provider through the rate limiter, retry
engine, and audit recorder.

Examples:
  # Start with default config
  sportsgate run

  # Start with custom config
  sportsgate run --config /etc/sportsgate/config.yaml

  # Override listen address
  sportsgate run --listen 0.0.0.0:8080

  # Validate config without starting server
  sportsgate run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	// Initialize logging based on config
	logger, err := logging.New(logging.Config{
		Level:         cfg.Telemetry.Logging.Level,
		Format:        cfg.Telemetry.Logging.Format,
		AddSource:     cfg.Telemetry.Logging.AddSource,
		RedactSecrets: cfg.Telemetry.Logging.RedactSecrets,
	})
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger.Slog())

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	// Print startup banner
	printBanner(cfg)

	// Create the upstream provider
	slog.Info("initializing provider", "name", cfg.Provider.Name)
	provider, err := providerfactory.NewProvider(providers.ProviderConfig{
		Name:                cfg.Provider.Name,
		BaseURL:             cfg.Provider.BaseURL,
		Timeout:             cfg.Provider.Timeout,
		MaxIdleConns:        cfg.Provider.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Provider.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Provider.IdleConnTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	fmt.Printf("✓ Provider initialized (%s)\n", cfg.Provider.Name)

	// Rate limiter and retry engine shared by all operations
	limiter := ratelimit.NewSlidingWindow(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	engine := retry.New(retry.Policy{
		MaxRetries:  cfg.Retry.MaxRetries,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
		Multiplier:  cfg.Retry.Multiplier,
		JitterRange: cfg.Retry.JitterRange,
	})

	// Prometheus metrics
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(prometheus.NewRegistry())
	}

	// Audit trail (if enabled)
	registryOpts := []dispatch.Option{}
	if collector != nil {
		registryOpts = append(registryOpts, dispatch.WithMetrics(collector))
	}
	if cfg.Audit.Enabled {
		slog.Info("initializing audit trail", "backend", cfg.Audit.Backend)

		var auditStorage audit.Storage
		switch cfg.Audit.Backend {
		case "sqlite":
			sqliteConfig := storage.DefaultSQLiteConfig()
			sqliteConfig.Path = cfg.Audit.Path
			auditStorage, err = storage.NewSQLiteStorage(sqliteConfig)
			if err != nil {
				return fmt.Errorf("failed to create SQLite storage: %w", err)
			}
		case "memory":
			auditStorage = storage.NewMemoryStorage()
		default:
			return fmt.Errorf("unsupported audit backend: %s", cfg.Audit.Backend)
		}
		defer auditStorage.Close()

		auditRecorder := recorder.New(auditStorage, &recorder.Config{
			Enabled:      true,
			AsyncBuffer:  cfg.Audit.AsyncBuffer,
			WriteTimeout: cfg.Audit.WriteTimeout,
		})
		defer auditRecorder.Close()
		registryOpts = append(registryOpts, dispatch.WithAudit(auditRecorder))

		// Start retention scheduler if a schedule is configured
		if cfg.Audit.PruneSchedule != "" {
			pruner := retention.NewPruner(auditStorage, &retention.Config{
				RetentionDays: cfg.Audit.RetentionDays,
				PruneSchedule: cfg.Audit.PruneSchedule,
				MaxEvents:     cfg.Audit.MaxEvents,
			})
			if err := pruner.Scheduler().Start(context.Background()); err != nil {
				slog.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer pruner.Scheduler().Stop()
				if next := pruner.Scheduler().NextRun(); next != nil {
					slog.Debug("audit retention scheduler started", "next_pruning", next)
				}
			}
		}

		fmt.Println("✓ Audit trail initialized")
	}

	// Wire the dispatch registry and register the operation contracts
	registry := dispatch.NewRegistry(limiter, engine, registryOpts...)
	if err := operations.RegisterAll(registry, provider); err != nil {
		return fmt.Errorf("failed to register operations: %w", err)
	}
	fmt.Printf("✓ Operations registered (%d operations)\n", len(registry.ListOperations()))

	// Watch the config file so log level changes apply without restart
	watcher, err := config.NewWatcher(cfgFile, slog.Default())
	if err != nil {
		slog.Warn("config watcher unavailable", "error", err)
	}

	// Create HTTP server
	slog.Info("creating HTTP server")
	srv := server.New(cfg, registry, provider, collector, Version)

	// Cancelled on SIGINT/SIGTERM, which drives the graceful shutdown.
	ctx := cli.SetupSignalHandler()

	if watcher != nil {
		go func() {
			err := watcher.Watch(ctx, func(next *config.Config) {
				if err := logger.SetLevel(next.Telemetry.Logging.Level); err != nil {
					slog.Warn("ignoring invalid log level from reloaded config",
						"level", next.Telemetry.Logging.Level,
					)
				}
			})
			if err != nil {
				slog.Warn("config watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Execute endpoint: http://%s/proxy/execute\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if collector != nil {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Start blocks until the context is cancelled, a shutdown signal
	// arrives, or the listener fails.
	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

func printBanner(cfg *config.Config) {
	fmt.Printf("SportsGate v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	slog.Debug("provider configured", "name", cfg.Provider.Name, "timeout", cfg.Provider.Timeout)
	slog.Debug("rate limit configured",
		"max_requests", cfg.RateLimit.MaxRequests,
		"window", cfg.RateLimit.Window,
	)
	slog.Debug("retry configured",
		"max_retries", cfg.Retry.MaxRetries,
		"base_delay", cfg.Retry.BaseDelay,
	)
	if cfg.Audit.Enabled {
		slog.Debug("audit enabled", "backend", cfg.Audit.Backend)
	}
}
