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

	"github.com/wl0182/Restaurant-Ordering-System/internal/api"
	"github.com/wl0182/Restaurant-Ordering-System/internal/auth"
	"github.com/wl0182/Restaurant-Ordering-System/internal/clients/restaurant"
	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/internal/service"
	"github.com/wl0182/Restaurant-Ordering-System/internal/workflow"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/broker"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/config"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/job"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/logger"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/storage"
)

const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	var store storage.Store = storage.NewMemory()

	if cfg.Redis.Addr != "" {
		rdb, err := storage.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		panicOnErr("connect to redis", err)

		defer rdb.Close()

		store = rdb
	} else {
		slog.WarnContext(ctx, "REDIS_ADDR is empty, logins are kept in memory")
	}

	client := restaurant.NewClient(cfg.RestaurantAPI)

	var (
		workflowEvents workflow.Publisher
		kitchenEvents  service.KitchenPublisher
	)

	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.WorkflowTopic, cfg.Kafka.KitchenTopic)
		defer producer.Close()

		workflowEvents = producer
		kitchenEvents = producer
	}

	wf := workflow.New(client, workflowEvents)
	s := service.New(client)

	account := auth.NewServiceAccount(client, entity.Credential{
		Email:    cfg.Kitchen.Email,
		Password: cfg.Kitchen.Password,
	})
	monitor := service.NewKitchenMonitor(client, account, kitchenEvents)

	jobs := job.NewService().
		TryRegisterJob(cfg.Kitchen.Enabled(), "poll kitchen queue", cfg.Kitchen.PollInterval, monitor.Poll).
		Start(ctx)

	handler := api.NewHandler(wf, s)
	mw := api.NewMiddleware(client, store, cfg.HTTP)

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

	slog.InfoContext(ctx, "service started",
		"port", cfg.HTTP.Port,
		"backend", cfg.RestaurantAPI.BaseURL,
		"jobs", jobs.Len(),
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, stop := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer stop()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
	}()

	wg.Wait()
	jobs.Stop()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
