package app

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"paytrailgw/config"
	"paytrailgw/internal/callback"
	"paytrailgw/internal/checkout"
	"paytrailgw/internal/controller/rest"
	"paytrailgw/internal/controller/rest/handlers"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/kafka"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/internal/notify"
	"paytrailgw/internal/repo/eventsink"
	order_repo "paytrailgw/internal/repo/order"
	payment_repo "paytrailgw/internal/repo/payment"
	"paytrailgw/pkg/health"
	"paytrailgw/pkg/logger"
	"paytrailgw/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	orderRepo := order_repo.NewPgOrderRepo(pool)
	paymentRepo := payment_repo.NewPgPaymentRepo(pool)

	gateway, err := newGateway(l, cfg)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newGateway: %w", err))
	}
	legacySigner := paytrail.NewAuthcodeSigner(cfg.LegacyMerchantHash)

	validator := callback.NewValidator(paytrail.NewHmacSigner(cfg.PaytrailSecret), legacySigner)
	reconciler := payment.NewReconciler(paymentRepo, l)

	publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotifyTopic)
	defer publisher.Close()
	queue := notify.NewQueue(publisher)

	sink := newEventSink(ctx, l, cfg)

	callbackService := callback.NewService(orderRepo, validator, reconciler, queue, sink, l)

	builder := checkout.NewBuilder(checkout.BuilderConfig{
		PublicBaseURL:         cfg.PublicBaseURL,
		Currency:              cfg.DefaultCurrency,
		Language:              cfg.DefaultLanguage,
		RemoveItemsOnDiscount: cfg.RemoveItemsOnDiscount,
		LegacyMerchantID:      cfg.LegacyMerchantID,
	})
	checkoutService := checkout.NewService(orderRepo, paymentRepo, gateway, reconciler, builder, legacySigner, l)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, l)
	callbackHandler := handlers.NewCallbackHandler(callbackService, l)

	healthRegistry := health.NewRegistry(
		health.NewPostgresChecker(pool.Pool),
		health.NewKafkaChecker(cfg.KafkaBrokers),
	)

	router := rest.NewRouter(checkoutHandler, callbackHandler, healthRegistry)
	router.SetUp(engine)

	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	if len(cfg.KafkaBrokers) > 0 {
		StartWorkers(ctx, l, cfg, orderRepo, gateway, reconciler)
	}

	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}

// newGateway builds the provider client with its request hooks attached.
func newGateway(l *logger.Logger, cfg config.Config) (*paytrail.Client, error) {
	algorithm, err := paytrail.ParseAlgorithm(cfg.PaytrailAlgorithm)
	if err != nil {
		return nil, err
	}

	hooks := paytrail.NewHooks()
	hooks.OnBeforeSend(func(_ context.Context, req *paytrail.CreatePaymentRequest) error {
		if req.Language == "" {
			req.Language = cfg.DefaultLanguage
		}
		return nil
	})
	hooks.OnAfterCreate(func(_ context.Context, req paytrail.CreatePaymentRequest, resp *paytrail.CreatePaymentResponse) error {
		l.Info("Payment created: reference=%s transaction_id=%s", req.Reference, resp.TransactionID)
		return nil
	})

	return paytrail.NewClient(l, paytrail.ClientConfig{
		BaseURL: cfg.PaytrailBaseURL,
		Credentials: paytrail.Credentials{
			Account: cfg.PaytrailAccount,
			Secret:  cfg.PaytrailSecret,
		},
		Algorithm: algorithm,
		Platform:  cfg.PlatformName,
		Timeout:   cfg.PaytrailTimeout,
	}, hooks), nil
}

// newEventSink returns the OpenSearch audit sink when configured, nil
// otherwise. The callback service treats a nil sink as disabled.
func newEventSink(ctx context.Context, l *logger.Logger, cfg config.Config) payment.EventSink {
	if len(cfg.OpensearchUrls) == 0 {
		return nil
	}
	sink, err := eventsink.NewOpenSearchSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexPayments)
	if err != nil {
		l.Error("OpenSearch sink disabled: error=%v", err)
		return nil
	}
	return sink
}
