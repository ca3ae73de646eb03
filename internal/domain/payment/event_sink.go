package payment

import "context"

//go:generate mockgen -source=event_sink.go -destination=mock_event_sink.go -package=payment

// EventSink is a search-oriented store of raw provider events, kept next to
// but independent from the transactional audit trail. Indexing is best
// effort; a sink failure never fails the callback that produced the event.
type EventSink interface {
	IndexProviderEvent(ctx context.Context, ev ProviderEvent) error
	ProviderEventsForOrder(ctx context.Context, orderID string) ([]ProviderEvent, error)
}
