package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/async"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/export"
	"github.com/dibiaa/fms-tracker/internal/reports"
	repo "github.com/dibiaa/fms-tracker/internal/repository"
	"github.com/dibiaa/fms-tracker/internal/resolver"
	svc "github.com/dibiaa/fms-tracker/internal/server"
	"github.com/dibiaa/fms-tracker/internal/source"
	fmssync "github.com/dibiaa/fms-tracker/internal/sync"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	rules := resolver.DefaultRuleSet()
	if cfg.Sync.RuleSetPath != "" {
		data, err := os.ReadFile(cfg.Sync.RuleSetPath)
		if err != nil {
			logger.Error("failed to read rule set", "path", cfg.Sync.RuleSetPath, "error", err)
			os.Exit(1)
		}
		rules, err = resolver.LoadRuleSet(data)
		if err != nil {
			logger.Error("failed to load rule set", "path", cfg.Sync.RuleSetPath, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded rule set override", "version", rules.Version, "path", cfg.Sync.RuleSetPath)
	}

	jobsRepo := repo.NewJobRecordRepository(entc, logger)
	tasksRepo := repo.NewStepTaskRepository(entc, logger)
	configRepo := repo.NewStepConfigRepository(entc, logger)
	holidayRepo := repo.NewHolidayRepository(entc, logger)
	checklistRepo := repo.NewChecklistRepository(entc, logger)
	delegationRepo := repo.NewDelegationRepository(entc, logger)
	commentsRepo := repo.NewCommentRepository(entc, logger)
	usersRepo := repo.NewUserRepository(entc, logger)
	plansRepo := repo.NewEmployeePlanRepository(entc, logger)

	reader := source.NewXLSXReader(source.Config{
		Path:      cfg.Sheet.Path,
		TabName:   cfg.Sheet.TabName,
		HeaderRow: cfg.Sheet.HeaderRow,
	}, logger)

	engine := fmssync.NewEngine(reader, jobsRepo, tasksRepo, rules, logger,
		fmssync.WithFetchTimeout(cfg.Sync.FetchTimeout),
		fmssync.WithChunkSize(cfg.Sync.ChunkSize),
	)

	queue := async.NewSyncQueue(engine, logger,
		async.WithQueueSize(32),
		async.WithRunTimeout(5*time.Minute),
	)

	exporter := export.NewService(tasksRepo, jobsRepo, logger)
	reportsSvc := reports.NewService(tasksRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterSyncServiceServer(grpcServer, svc.NewSyncService(engine, queue, logger))
	v1.RegisterTasksServiceServer(grpcServer, svc.NewTasksService(jobsRepo, tasksRepo, configRepo, exporter, logger))
	v1.RegisterReportsServiceServer(grpcServer, svc.NewReportsService(reportsSvc, logger))
	v1.RegisterDelegationServiceServer(grpcServer, svc.NewDelegationService(delegationRepo, commentsRepo, logger))
	v1.RegisterChecklistServiceServer(grpcServer, svc.NewChecklistService(checklistRepo, holidayRepo, logger))
	v1.RegisterAdminServiceServer(grpcServer, svc.NewAdminService(usersRepo, holidayRepo, plansRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("fmsd listening", "addr", cfg.Server.GRPCAddr, "sheet", cfg.Sheet.Path)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
