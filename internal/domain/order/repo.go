package order

import "context"

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=order

// Repo is the gateway's view of order persistence.
type Repo interface {
	GetOrder(ctx context.Context, id string) (Order, error)
	CreateOrder(ctx context.Context, o Order) error

	// SetStamp records the correlation stamp of the latest create-payment
	// request built for the order.
	SetStamp(ctx context.Context, id, stamp string) error

	// IncrementNotifyTries bumps the persisted retry counter and returns
	// the new value.
	IncrementNotifyTries(ctx context.Context, id string) (int, error)
}
