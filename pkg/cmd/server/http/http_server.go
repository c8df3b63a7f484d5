package http

import (
	"context"
	"fmt"
	"net/http"

	//nolint:gosec // pprof handlers are only exposed on the profiling port
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/config"
	apiserver "github.com/apexview/f1telemetry-service-go/pkg/server/telemetry"
	"github.com/apexview/f1telemetry-service-go/pkg/session"
	"github.com/apexview/f1telemetry-service-go/pkg/telemetry"
)

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "starts the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer()
		},
	}
	cmd.Flags().StringVarP(&config.HTTPServerAddr,
		"http-server-addr", "a", "localhost:8080",
		"Address on which the HTTP server listens")
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level", "info", "controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format", "json", "controls the log output format (json, text)")
	cmd.Flags().StringVar(&config.LogConfig,
		"log-config", "", "file containing logger filter rules")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry", false, "enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint", "", "Endpoint that receives open telemetry data")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port", 0, "port on which to expose pprof data (0 means disabled)")
	return cmd
}

//nolint:funlen,cyclop // by design
func startServer() error {
	parseLogLevel := func(l string, defaultVal log.Level) log.Level {
		level, err := log.ParseLevel(l)
		if err != nil {
			return defaultVal
		}
		return level
	}

	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	if config.LogConfig != "" {
		rules, err := os.ReadFile(config.LogConfig)
		if err != nil {
			return fmt.Errorf("could not read log config file %s: %w",
				config.LogConfig, err)
		}
		logger = logger.WithFilter(string(rules))
	}
	log.ResetDefault(logger)

	if config.ProfilingPort > 0 {
		go func() {
			log.Info("Starting profiling server",
				log.Int("port", config.ProfilingPort))
			//nolint:gosec // ok for debugging purposes
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort), nil)
			if err != nil {
				log.Error("profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var telemetryShutdown *config.Telemetry
	if config.EnableTelemetry {
		tel, err := config.SetupTelemetry(ctx)
		if err != nil {
			return err
		}
		telemetryShutdown = tel
		if err := otlpruntime.Start(
			otlpruntime.WithMinimumReadMemStatsInterval(10 * time.Second),
		); err != nil {
			log.Warn("could not start runtime metrics", log.ErrorField(err))
		}
	}

	loaderOpts := []session.LoaderOption{
		session.WithBaseURL(config.UpstreamURL),
		session.WithCacheDir(config.CacheDir),
		session.WithLoaderLogger(logger.Named("session")),
	}
	if cacheTTL, ttlErr := time.ParseDuration(config.CacheTTL); ttlErr == nil {
		loaderOpts = append(loaderOpts, session.WithCacheTTL(cacheTTL))
	} else {
		log.Warn("invalid cache-ttl, using default",
			log.String("value", config.CacheTTL), log.ErrorField(ttlErr))
	}
	loader := session.NewLoader(loaderOpts...)
	proc := telemetry.NewProcessor(
		telemetry.WithProvider(session.NewProvider()),
		telemetry.WithLogger(logger.Named("telemetry")),
	)
	api := apiserver.NewServer(
		apiserver.WithLoader(loader),
		apiserver.WithProcessor(proc),
		apiserver.WithLogger(logger.Named("api")),
	)

	mux := http.NewServeMux()
	api.Register(mux)

	srv := &http.Server{
		Addr:              config.HTTPServerAddr,
		ReadHeaderTimeout: 10 * time.Second,
		Handler:           h2c.NewHandler(newCORS().Handler(mux), &http2.Server{}),
	}
	go func() {
		log.Info("Starting server", log.String("addr", config.HTTPServerAddr))
		if serveErr := srv.ListenAndServe(); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			log.Error("server stopped", log.ErrorField(serveErr))
		}
	}()

	setupGoRoutinesDump()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	v := <-sigChan
	log.Debug("Got signal", log.Any("signal", v))
	if telemetryShutdown != nil {
		telemetryShutdown.Shutdown()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server", log.ErrorField(err))
	}
	log.Info("Server terminated")
	return nil
}

func newCORS() *cors.Cors {
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowOriginFunc: func(origin string) bool {
			// Allow all origins, which effectively disables CORS.
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			"X-Request-Id",
		},
		MaxAge: int(2 * time.Hour / time.Second),
	})
	return c
}

func setupGoRoutinesDump() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGQUIT)
	go func() {
		for range sigChan {
			buf := make([]byte, 102400)
			stacklen := runtime.Stack(buf, true)
			fmt.Printf("=== received SIGQUIT ===\n*** goroutine dump...\n%s\n*** end\n",
				buf[:stacklen])
		}
	}()
}
