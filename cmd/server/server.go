package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/duelhall/encounter-api/internal/catalog"
	"github.com/duelhall/encounter-api/internal/collaborators/difficulty"
	"github.com/duelhall/encounter-api/internal/collaborators/narration"
	"github.com/duelhall/encounter-api/internal/dice"
	"github.com/duelhall/encounter-api/internal/orchestrators/encounter"
	"github.com/duelhall/encounter-api/internal/pkg/idgen"
	redisclient "github.com/duelhall/encounter-api/internal/redis"
	sessionrepo "github.com/duelhall/encounter-api/internal/repositories/session"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the encounter gRPC server",
	Long:  `Start the encounter server with health checking and reflection enabled.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ENCOUNTER_GRPC_PORT)")
}

// buildService wires the full dependency graph: redis-backed session
// storage, the SRD catalog, a seeded-from-entropy roller, and the
// optional HTTP collaborators.
func buildService(cfg *appConfig) (encounter.Service, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := sessionrepo.NewRedisRepository(&sessionrepo.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	orchestratorCfg := &encounter.Config{
		SessionRepo: repo,
		Catalog:     catalog.NewSRD(),
		Roller:      dice.NewRoller(),
		IDGenerator: idgen.NewUUID("sess"),
	}

	if cfg.NarratorURL != "" {
		narrator, err := narration.NewHTTPNarrator(&narration.Config{
			Endpoint: cfg.NarratorURL,
			Timeout:  cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create narrator: %w", err)
		}
		orchestratorCfg.Narrator = narrator
	}

	if cfg.DCChooserURL != "" {
		chooser, err := difficulty.NewHTTPChooser(&difficulty.Config{
			Endpoint: cfg.DCChooserURL,
			Timeout:  cfg.HTTPTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DC chooser: %w", err)
		}
		orchestratorCfg.DCChooser = chooser
	}

	return encounter.NewOrchestrator(orchestratorCfg)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	service, err := buildService(cfg)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if service != nil {
		healthServer.SetServingStatus("encounter.v1alpha1.EncounterService", grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	switch level {
	case grpc_logging.LevelDebug:
		slog.Debug(msg, fields...)
	case grpc_logging.LevelWarn:
		slog.Warn(msg, fields...)
	case grpc_logging.LevelError:
		slog.Error(msg, fields...)
	default:
		slog.Info(msg, fields...)
	}
}
