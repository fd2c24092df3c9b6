package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/recuperatax/audit/internal/api"
	"github.com/recuperatax/audit/internal/clients/registry"
	"github.com/recuperatax/audit/internal/repository"
	"github.com/recuperatax/audit/internal/service"
	"github.com/recuperatax/audit/pkg/broker"
	"github.com/recuperatax/audit/pkg/config"
	"github.com/recuperatax/audit/pkg/job"
	"github.com/recuperatax/audit/pkg/logger"
	"github.com/recuperatax/audit/pkg/postgres"
)

const (
	ReadTimeout  = 30 * time.Second
	WriteTimeout = 30 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(pool)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	registryClient := registry.NewClient(cfg.Registry)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.AuditCompletedTopic)
	defer producer.Close()

	s := service.New(repo, repo, repo, registryClient, producer, service.Config{
		RegistryRetryBase:  time.Duration(cfg.Registry.RetryBaseMS) * time.Millisecond,
		RegistryMaxRetries: cfg.Registry.MaxRetries,
		SupplierMaxAge:     time.Duration(cfg.Jobs.SupplierMaxAgeDays) * 24 * time.Hour,
	})

	runner := job.NewRunner().
		TryRegister(cfg.Jobs.SupplierRefreshEnabled, "refresh stale suppliers",
			time.Duration(cfg.Jobs.SupplierRefreshIntervalHours)*time.Hour, s.RefreshStaleSuppliers)
	runner.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		runner.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
