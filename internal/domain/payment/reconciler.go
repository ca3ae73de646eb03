package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paytrailgw/pkg/logger"
)

const (
	EventAuthorized = "authorized"
	EventCaptured   = "captured"
	EventVoided     = "voided"
	EventRefunded   = "refunded"
)

// Reconciler maps validated provider events onto the payment state machine.
// Apply runs inside a single repository transaction so that concurrent
// deliveries of the same event (redirect racing the webhook, webhook racing
// a poll) serialize on the payment row.
type Reconciler struct {
	repo Repo
	log  *logger.Logger
}

func NewReconciler(repo Repo, log *logger.Logger) *Reconciler {
	return &Reconciler{repo: repo, log: log}
}

// Apply advances the payment for the event's order. Replays of an already
// applied event are a silent no-op; a transaction id that contradicts the
// stored one is a hard error and never retried.
func (r *Reconciler) Apply(ctx context.Context, ev ProviderEvent) (Payment, error) {
	var result Payment

	err := r.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetPaymentForOrder(ctx, ev.OrderID)
		created := false
		switch {
		case errors.Is(err, ErrNotFound):
			p = newPayment(ev)
			created = true
		case err != nil:
			return fmt.Errorf("load payment for order %s: %w", ev.OrderID, err)
		}

		if p.RemoteID != "" && ev.TransactionID != "" && p.RemoteID != ev.TransactionID {
			return fmt.Errorf("%w: order %s has %s, event carries %s",
				ErrRemoteIDMismatch, ev.OrderID, p.RemoteID, ev.TransactionID)
		}

		applied, err := r.advance(&p, ev)
		if err != nil {
			return err
		}
		if !applied {
			result = p
			return nil
		}

		if created {
			if err = tx.CreatePayment(ctx, p); err != nil {
				return fmt.Errorf("create payment: %w", err)
			}
		}

		for _, e := range r.events(p, ev) {
			if err = tx.CreateEvent(ctx, e); err != nil {
				if errors.Is(err, ErrEventAlreadyStored) {
					r.log.Info("reconciler: event %s already applied for order %s, skipping", e.Type, ev.OrderID)
					result = p
					return nil
				}
				return fmt.Errorf("store event: %w", err)
			}
		}

		if !created {
			if err = tx.UpdatePayment(ctx, p); err != nil {
				return fmt.Errorf("update payment: %w", err)
			}
		}
		if p.State == StateCompleted {
			if err = tx.MarkOrderPaid(ctx, ev.OrderID); err != nil {
				return fmt.Errorf("mark order paid: %w", err)
			}
		}

		result = p
		return nil
	})
	if err != nil {
		return Payment{}, err
	}
	return result, nil
}

// advance mutates p according to the event status. It returns false when the
// event carries nothing new, which is how replays and out-of-order redirect
// deliveries degrade to no-ops instead of errors.
func (r *Reconciler) advance(p *Payment, ev ProviderEvent) (bool, error) {
	switch ev.Status {
	case CallbackNew, CallbackPending, CallbackDelayed:
		// The provider has not settled yet, nothing to advance. The
		// notification worker keeps polling until it does.
		return false, nil

	case CallbackOk:
		switch p.State {
		case StateNew:
			// First sighting of a successful payment authorizes it.
			// Capture happens on the next ok delivery, matching the
			// provider's two-phase settlement.
			return true, p.Authorize(ev.TransactionID)
		case StateAuthorization:
			return true, p.Capture()
		case StateCompleted, StatePartiallyRefunded, StateRefunded:
			return false, nil
		default:
			return false, fmt.Errorf("%w: %s cannot settle", ErrIllegalTransition, p.State)
		}

	case CallbackFail:
		switch p.State {
		case StateNew:
			// Never authorized, nothing to void.
			return false, nil
		case StateAuthorization:
			return true, p.Void()
		default:
			return false, fmt.Errorf("%w: %s cannot fail", ErrIllegalTransition, p.State)
		}

	default:
		return false, fmt.Errorf("unexpected callback status %q", ev.Status)
	}
}

// events returns the audit record for the transition advance just applied.
func (r *Reconciler) events(p Payment, ev ProviderEvent) []Event {
	switch p.State {
	case StateAuthorization:
		return []Event{NewEvent(p, EventAuthorized, ev.Channel)}
	case StateCompleted:
		return []Event{NewEvent(p, EventCaptured, ev.Channel)}
	case StateAuthorizationVoided:
		return []Event{NewEvent(p, EventVoided, ev.Channel)}
	default:
		return nil
	}
}

func newPayment(ev ProviderEvent) Payment {
	now := time.Now().UTC()
	return Payment{
		ID:        uuid.New().String(),
		OrderID:   ev.OrderID,
		State:     StateNew,
		Amount:    ev.Amount,
		Currency:  ev.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
