package callback

import (
	"context"
	"errors"
	"fmt"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/internal/notify"
	"paytrailgw/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=callback

// ErrEventSearchDisabled is returned by OrderEvents when the deployment runs
// without a search sink.
var ErrEventSearchDisabled = errors.New("event search not configured")

type Reconciler interface {
	Apply(ctx context.Context, ev payment.ProviderEvent) (payment.Payment, error)
}

type Enqueuer interface {
	Enqueue(ctx context.Context, item notify.Item) error
}

// Service resolves the order a callback claims to settle, validates the
// callback and feeds it to the reconciler. Unsettled outcomes are handed to
// the notification queue so the worker polls until the provider decides.
type Service struct {
	orders     order.Repo
	validator  *Validator
	reconciler Reconciler
	queue      Enqueuer
	sink       payment.EventSink
	log        *logger.Logger
}

func NewService(
	orders order.Repo,
	validator *Validator,
	reconciler Reconciler,
	queue Enqueuer,
	sink payment.EventSink,
	log *logger.Logger,
) *Service {
	return &Service{
		orders:     orders,
		validator:  validator,
		reconciler: reconciler,
		queue:      queue,
		sink:       sink,
		log:        log,
	}
}

// HandleReturn processes the browser redirect back from the provider.
func (s *Service) HandleReturn(ctx context.Context, params map[string]string) (payment.Payment, error) {
	return s.handle(ctx, params, payment.ChannelRedirect)
}

// HandleNotify processes the asynchronous webhook. It shares the full
// validation and reconciliation path with the redirect so whichever arrives
// second degrades to a no-op.
func (s *Service) HandleNotify(ctx context.Context, params map[string]string) (payment.Payment, error) {
	return s.handle(ctx, params, payment.ChannelWebhook)
}

func (s *Service) handle(ctx context.Context, params map[string]string, channel payment.Channel) (payment.Payment, error) {
	orderID := params[FieldReference]
	if orderID == "" {
		return payment.Payment{}, fmt.Errorf("%w: %s", apperror.ErrMissingField, FieldReference)
	}

	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("resolve order %s: %w", orderID, err)
	}

	ev, err := s.validator.Validate(params, ord, channel)
	if err != nil {
		return payment.Payment{}, err
	}

	return s.reconcile(ctx, ord, ev)
}

// HandleLegacyNotify processes a legacy-scheme notify callback.
func (s *Service) HandleLegacyNotify(ctx context.Context, params map[string]string) (payment.Payment, error) {
	orderID := params[paytrail.LegacyParamOrderNumber]
	if orderID == "" {
		return payment.Payment{}, fmt.Errorf("%w: %s", apperror.ErrMissingField, paytrail.LegacyParamOrderNumber)
	}

	ord, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("resolve order %s: %w", orderID, err)
	}

	ev, err := s.validator.ValidateLegacy(params, ord, payment.ChannelWebhook)
	if err != nil {
		return payment.Payment{}, err
	}

	return s.reconcile(ctx, ord, ev)
}

// OrderEvents returns the indexed provider-event history of an order, oldest
// first, for support tooling.
func (s *Service) OrderEvents(ctx context.Context, orderID string) ([]payment.ProviderEvent, error) {
	if s.sink == nil {
		return nil, ErrEventSearchDisabled
	}

	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, fmt.Errorf("resolve order %s: %w", orderID, err)
	}
	return s.sink.ProviderEventsForOrder(ctx, orderID)
}

func (s *Service) reconcile(ctx context.Context, ord order.Order, ev payment.ProviderEvent) (payment.Payment, error) {
	p, err := s.reconciler.Apply(ctx, ev)
	if err != nil {
		return payment.Payment{}, err
	}

	if !ev.Status.Settled() {
		// A legacy notify before settlement may carry no PAYMENT_ID yet.
		// There is no transaction to poll then, so no status check is
		// queued; the provider notifies again once the payment settles.
		if ev.TransactionID == "" {
			s.log.Debug("callback: order %s pending without transaction id, skipping status check", ord.ID)
		} else {
			item := notify.Item{OrderID: ord.ID, TransactionID: ev.TransactionID}
			if err := s.queue.Enqueue(ctx, item); err != nil {
				return payment.Payment{}, fmt.Errorf("enqueue status check for order %s: %w", ord.ID, err)
			}
		}
	}

	if s.sink != nil {
		if err := s.sink.IndexProviderEvent(ctx, ev); err != nil {
			s.log.Warn("callback: indexing event for order %s failed: %v", ord.ID, err)
		}
	}

	return p, nil
}
