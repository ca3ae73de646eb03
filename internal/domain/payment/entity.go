// Package payment owns the payment entity state machine and the reconciler
// that maps validated provider responses onto it.
package payment

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// State of a payment. A payment is created in StateNew, moves to
// StateAuthorization when the provider authorizes, and from there to
// StateCompleted (capture) or StateAuthorizationVoided. A completed payment
// can be partially or fully refunded.
type State string

const (
	StateNew                 State = "new"
	StateAuthorization       State = "authorization"
	StateCompleted           State = "completed"
	StateAuthorizationVoided State = "authorization_voided"
	StatePartiallyRefunded   State = "partially_refunded"
	StateRefunded            State = "refunded"
)

var AvailableStates = []State{
	StateNew, StateAuthorization, StateCompleted,
	StateAuthorizationVoided, StatePartiallyRefunded, StateRefunded,
}

func NewState(raw string) (State, error) {
	if slices.Contains(AvailableStates, State(raw)) {
		return State(raw), nil
	}
	return "", errors.New("invalid payment state")
}

// CanTransitionTo enumerates the legal predecessor sets. Everything not
// listed is illegal; illegality is the idempotency guard that turns a
// duplicate callback into a rejection instead of a double capture.
func (s State) CanTransitionTo(next State) bool {
	switch s {
	case StateNew:
		return next == StateAuthorization
	case StateAuthorization:
		return slices.Contains([]State{StateCompleted, StateAuthorizationVoided}, next)
	case StateCompleted:
		return slices.Contains([]State{StatePartiallyRefunded, StateRefunded}, next)
	case StatePartiallyRefunded:
		return slices.Contains([]State{StatePartiallyRefunded, StateRefunded}, next)
	case StateRefunded, StateAuthorizationVoided:
		return false
	default:
		return false
	}
}

// Payment is the single long-lived mutable entity the gateway owns. It is
// created once per order on first successful authorization and mutated only
// through the reconciler and the refund service.
type Payment struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	State          State     `json:"state"`
	RemoteID       string    `json:"remote_id"`
	Amount         int64     `json:"amount"`
	RefundedAmount int64     `json:"refunded_amount"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Balance is the capturable/refundable remainder in minor units.
func (p Payment) Balance() int64 {
	return p.Amount - p.RefundedAmount
}

// Authorize moves a new payment to authorization, recording the remote
// transaction id.
func (p *Payment) Authorize(remoteID string) error {
	if err := p.transition(StateAuthorization); err != nil {
		return err
	}
	p.RemoteID = remoteID
	return nil
}

// Capture settles an authorized payment.
func (p *Payment) Capture() error {
	return p.transition(StateCompleted)
}

// Void releases an authorization that was never captured.
func (p *Payment) Void() error {
	return p.transition(StateAuthorizationVoided)
}

// Refund applies a refund of the given minor-unit amount. An amount
// exceeding the remaining balance is rejected outright; a refund that
// empties the balance moves the payment to refunded, anything less to
// partially refunded.
func (p *Payment) Refund(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("refund amount must be positive, got %d", amount)
	}
	if amount > p.Balance() {
		return fmt.Errorf("%w: %d > %d", ErrRefundExceedsBalance, amount, p.Balance())
	}

	next := StatePartiallyRefunded
	if amount == p.Balance() {
		next = StateRefunded
	}
	if err := p.transition(next); err != nil {
		return err
	}

	p.RefundedAmount += amount
	return nil
}

func (p *Payment) transition(next State) error {
	if !p.State.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, p.State, next)
	}
	p.State = next
	p.UpdatedAt = time.Now().UTC()
	return nil
}
