package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/fnlab/domainfn/internal/service"
	"github.com/fnlab/domainfn/pkg/log"
)

const longHelp = `dfserve is a small account API built on the domainfn algebra.

Every endpoint is a composed domain function: the JSON body is the
untrusted input, request headers form the untrusted environment, and
both are validated before any business logic runs. Validation problems
come back on separate channels for input, environment, and internal
errors.

Configuration is layered from a TOML file, DFSERVE_* environment
variables, and flags, in increasing precedence.`

var exampleUsage = `  dfserve --addr :8080 --db ./accounts.db
  dfserve --config ./dfserve.toml --watch-config`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := service.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "dfserve",
		Short:   "Serve the domainfn demo account API",
		Long:    longHelp,
		Example: exampleUsage,
		Version: getVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = service.DefaultConfigPath()
			}
			if cfgFile != "" {
				if err := service.ApplyFile(&cfg, cfgFile); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if err := service.ApplyEnv(&cfg); err != nil {
				return err
			}
			// Flags win over file and env: re-apply every flag the
			// caller set explicitly.
			applyFlagOverrides(cmd.Flags(), &cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cfgFile)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.DefaultLocale, "default-locale", cfg.DefaultLocale, "locale assumed when requests send none")
	flags.BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "reload the config file on change")
	flags.StringVar(&cfgPath, "config", "", "path to config file (default ~/.dfserve/config.toml)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// applyFlagOverrides re-applies every flag the caller set explicitly.
// Flag variables point into cfg, but file and env loading may have
// overwritten them between parsing and RunE.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *service.Config) {
	flags.Visit(func(f *pflag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "addr":
			cfg.Addr = v
		case "db":
			cfg.DBPath = v
		case "log-level":
			cfg.LogLevel = v
		case "default-locale":
			cfg.DefaultLocale = v
		case "watch-config":
			cfg.WatchConfig = v == "true"
		}
	})
}

func run(ctx context.Context, cfg service.Config, cfgFile string) error {
	logger := newLogger(cfg.LogLevel)

	store, err := service.OpenStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := service.NewService(store, logger)
	server := service.NewServer(cfg, svc, logger)

	if cfg.WatchConfig && cfgFile != "" {
		watcher := service.NewConfigWatcher(cfgFile, cfg, logger, server.UpdateConfig)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("config watcher stopped", log.Err(err))
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", log.String("addr", cfg.Addr), log.String("db", cfg.DBPath))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func newLogger(level string) log.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
	return log.NewZerolog(zl)
}
