package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"paytrailgw/config"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/kafka"
	"paytrailgw/internal/messaging"
	"paytrailgw/internal/notify"
	order_repo "paytrailgw/internal/repo/order"
	payment_repo "paytrailgw/internal/repo/payment"
	"paytrailgw/pkg/logger"
	"paytrailgw/pkg/postgres"
)

// StartWorkers starts the Kafka consumer for queued payment status checks.
// It runs in a separate goroutine and stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	orders order.Repo,
	poller notify.StatusPoller,
	reconciler notify.Reconciler,
) {
	dlq := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotifyDLQTopic)

	handler := notify.NewHandler(
		orders,
		poller,
		reconciler,
		dlq,
		cfg.NotifyMaxTries,
		cfg.KafkaNotifyTopic,
		cfg.KafkaNotifyConsumerGroup,
		l,
	)

	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaNotifyTopic,
		cfg.KafkaNotifyConsumerGroup,
	)
	runner := messaging.NewRunner(l, []messaging.Worker{consumer}, handler.HandleMessage)

	go func() {
		l.Info("Starting notify consumer: topic=%s group=%s",
			cfg.KafkaNotifyTopic, cfg.KafkaNotifyConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Notify runner failed: error=%v", err)
		}
	}()
}

// RunWorker runs only the status-check consumer, for deployments that scale
// the worker separately from the HTTP service.
func RunWorker(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunWorker - postgres.New: %w", err))
	}
	defer pool.Close()

	orderRepo := order_repo.NewPgOrderRepo(pool)
	paymentRepo := payment_repo.NewPgPaymentRepo(pool)

	gateway, err := newGateway(l, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - RunWorker - newGateway: %w", err))
	}
	reconciler := payment.NewReconciler(paymentRepo, l)

	StartWorkers(ctx, l, cfg, orderRepo, gateway, reconciler)

	<-ctx.Done()
	l.Info("Shutting down worker gracefully...")
}
