package payment

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"paytrailgw/internal/controller/apperror"
)

// CallbackStatus is the normalized status a validated provider response
// carries. The validator maps raw provider strings onto this enumeration;
// anything outside it is rejected, never guessed at.
type CallbackStatus string

const (
	CallbackNew     CallbackStatus = "new"
	CallbackOk      CallbackStatus = "ok"
	CallbackFail    CallbackStatus = "fail"
	CallbackPending CallbackStatus = "pending"
	CallbackDelayed CallbackStatus = "delayed"
)

var allowedCallbackStatuses = []CallbackStatus{
	CallbackNew, CallbackOk, CallbackFail, CallbackPending, CallbackDelayed,
}

func ParseCallbackStatus(raw string) (CallbackStatus, error) {
	if slices.Contains(allowedCallbackStatuses, CallbackStatus(raw)) {
		return CallbackStatus(raw), nil
	}
	return "", fmt.Errorf("%w: %q", apperror.ErrInvalidStatus, raw)
}

// Settled reports whether the status still needs a webhook or a poll to
// resolve.
func (s CallbackStatus) Settled() bool {
	return s == CallbackOk || s == CallbackFail
}

// Channel identifies which delivery path produced a provider event.
type Channel string

const (
	ChannelRedirect Channel = "redirect"
	ChannelWebhook  Channel = "webhook"
	ChannelPoll     Channel = "poll"
	// ChannelMerchant marks merchant-initiated token operations.
	ChannelMerchant Channel = "merchant"
)

// ProviderEvent is a fully validated provider response, reduced to the
// fields the reconciler acts on. It is only ever constructed by the callback
// validator or the notification worker.
type ProviderEvent struct {
	OrderID       string         `json:"order_id"`
	TransactionID string         `json:"transaction_id"`
	Status        CallbackStatus `json:"status"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	Channel       Channel        `json:"channel"`
}

// Event is an audit record of a state transition the reconciler performed.
type Event struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type"`
	State         State     `json:"state"`
	Amount        int64     `json:"amount"`
	Channel       Channel   `json:"channel"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewEvent(p Payment, eventType string, channel Channel) Event {
	return Event{
		EventID:       uuid.New().String(),
		OrderID:       p.OrderID,
		TransactionID: p.RemoteID,
		Type:          eventType,
		State:         p.State,
		Amount:        p.Amount,
		Channel:       channel,
		CreatedAt:     time.Now().UTC(),
	}
}
