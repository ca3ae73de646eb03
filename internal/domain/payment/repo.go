package payment

import "context"

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=payment

// TxRepo is the per-transaction view of the payment store. Every method runs
// against the transaction it was obtained from.
type TxRepo interface {
	GetPaymentForOrder(ctx context.Context, orderID string) (Payment, error)
	CreatePayment(ctx context.Context, p Payment) error
	UpdatePayment(ctx context.Context, p Payment) error
	MarkOrderPaid(ctx context.Context, orderID string) error
	// CreateEvent persists an audit event. Events are unique per
	// (transaction id, type); a duplicate returns ErrEventAlreadyStored.
	CreateEvent(ctx context.Context, e Event) error
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
