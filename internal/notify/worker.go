// Package notify implements the delayed-webhook safety net: a queued,
// at-least-once status check per (order, transaction) that re-polls the
// provider until the payment settles or the retry ceiling is reached.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/internal/external/paytrail"
	"paytrailgw/internal/messaging"
	"paytrailgw/pkg/logger"
	"paytrailgw/pkg/metrics"
)

// NumMaxTries bounds redelivery per item. An item that keeps reporting a
// non-success status is redelivered until the order's persisted counter
// reaches this ceiling, then dropped to the DLQ for manual reconciliation.
const NumMaxTries = 10

const ItemType = "payment.status_check"

//go:generate mockgen -source=worker.go -destination=mock_worker.go -package=notify

// Item is one pending status check.
type Item struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

type StatusPoller interface {
	GetPayment(ctx context.Context, transactionID string) (paytrail.PaymentStatus, error)
}

type Reconciler interface {
	Apply(ctx context.Context, ev payment.ProviderEvent) (payment.Payment, error)
}

type DLQ interface {
	PublishToDLQ(ctx context.Context, key, value []byte, cause error) error
}

// Queue enqueues status checks for the worker to pick up.
type Queue struct {
	pub messaging.Publisher
}

func NewQueue(pub messaging.Publisher) *Queue {
	return &Queue{pub: pub}
}

func (q *Queue) Enqueue(ctx context.Context, item Item) error {
	envelope, err := messaging.NewEnvelope(item.OrderID, ItemType, item)
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}
	return q.pub.Publish(ctx, envelope)
}

// Handler processes claimed status-check items. Returning an error leaves
// the item uncommitted so the queue redelivers it; returning nil commits and
// removes it.
type Handler struct {
	orders     order.Repo
	poller     StatusPoller
	reconciler Reconciler
	dlq        DLQ
	maxTries   int

	topic string
	group string
	log   *logger.Logger
}

func NewHandler(
	orders order.Repo,
	poller StatusPoller,
	reconciler Reconciler,
	dlq DLQ,
	maxTries int,
	topic, group string,
	log *logger.Logger,
) *Handler {
	if maxTries <= 0 {
		maxTries = NumMaxTries
	}
	return &Handler{
		orders:     orders,
		poller:     poller,
		reconciler: reconciler,
		dlq:        dlq,
		maxTries:   maxTries,
		topic:      topic,
		group:      group,
		log:        log,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, key, value []byte) error {
	start := time.Now()

	err := h.process(ctx, key, value)

	status := "ok"
	if err != nil {
		status = "retry"
	}
	metrics.NotifyProcessingDuration.WithLabelValues(h.topic, h.group, status).Observe(time.Since(start).Seconds())
	metrics.NotifyItemsProcessed.WithLabelValues(h.topic, h.group, status).Inc()

	return err
}

func (h *Handler) process(ctx context.Context, key, value []byte) error {
	var envelope messaging.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		// Malformed items can never succeed, park them immediately.
		return h.drop(ctx, key, value, fmt.Errorf("decode envelope: %w", err))
	}

	var item Item
	if err := json.Unmarshal(envelope.Payload, &item); err != nil {
		return h.drop(ctx, key, value, fmt.Errorf("decode item: %w", err))
	}

	ord, err := h.orders.GetOrder(ctx, item.OrderID)
	switch {
	case errors.Is(err, apperror.ErrOrderNotFound):
		h.log.Info("notify: order %s no longer exists, dropping item", item.OrderID)
		return nil
	case err != nil:
		return fmt.Errorf("load order %s: %w", item.OrderID, err)
	}
	if ord.Paid {
		h.log.Debug("notify: order %s already paid, dropping item", ord.ID)
		return nil
	}

	status, err := h.poller.GetPayment(ctx, item.TransactionID)
	if err != nil {
		return h.retry(ctx, ord, key, value, fmt.Errorf("poll payment %s: %w", item.TransactionID, err))
	}

	callbackStatus, err := payment.ParseCallbackStatus(status.Status)
	if err != nil {
		return h.drop(ctx, key, value, err)
	}
	if !callbackStatus.Settled() {
		return h.retry(ctx, ord, key, value,
			fmt.Errorf("payment %s for order %s still %s", item.TransactionID, ord.ID, callbackStatus))
	}

	_, err = h.reconciler.Apply(ctx, payment.ProviderEvent{
		OrderID:       ord.ID,
		TransactionID: item.TransactionID,
		Status:        callbackStatus,
		Amount:        status.Amount,
		Currency:      status.Currency,
		Channel:       payment.ChannelPoll,
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindTransport {
			return h.retry(ctx, ord, key, value, err)
		}
		// Security and state errors are never transient, retrying would
		// just replay the same rejection ten times.
		return h.drop(ctx, key, value, err)
	}
	return nil
}

// retry bumps the order's persisted counter and re-raises unless the
// ceiling is reached, in which case the item is parked permanently.
func (h *Handler) retry(ctx context.Context, ord order.Order, key, value []byte, cause error) error {
	tries, err := h.orders.IncrementNotifyTries(ctx, ord.ID)
	if err != nil {
		return fmt.Errorf("increment notify tries for order %s: %w", ord.ID, err)
	}

	if tries >= h.maxTries {
		return h.drop(ctx, key, value,
			fmt.Errorf("retry ceiling %d reached for order %s: %w", h.maxTries, ord.ID, cause))
	}

	h.log.Warn("notify: order %s attempt %d/%d: %v", ord.ID, tries, h.maxTries, cause)
	return cause
}

// drop parks the item on the DLQ and commits it. The returned nil is what
// removes the item from the queue for good.
func (h *Handler) drop(ctx context.Context, key, value []byte, cause error) error {
	h.log.Error("notify: dropping item permanently: %v", cause)
	metrics.NotifyItemsDropped.WithLabelValues(h.topic).Inc()

	if err := h.dlq.PublishToDLQ(ctx, key, value, cause); err != nil {
		h.log.Error("notify: DLQ publish failed: %v", err)
	}
	return nil
}
