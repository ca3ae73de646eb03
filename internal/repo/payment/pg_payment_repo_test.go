package payment_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/payment"
)

func mockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestGetPaymentForOrder(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should return the payment for an order", func(t *testing.T) {
		now := time.Now()

		rows := mock.NewRows([]string{"id", "order_id", "state", "remote_id", "amount",
			"refunded_amount", "currency", "created_at", "updated_at"}).
			AddRow("p-1", "ORDER-1", "completed", "tx-1", int64(2200), int64(0), "EUR", now, now)

		mock.ExpectQuery(`SELECT id, order_id, state, remote_id, amount, refunded_amount, currency, created_at, updated_at FROM payments WHERE order_id = \$1`).
			WithArgs("ORDER-1").
			WillReturnRows(rows)

		p, err := repo.GetPaymentForOrder(ctx, "ORDER-1")

		require.NoError(t, err)
		assert.Equal(t, payment.StateCompleted, p.State)
		assert.Equal(t, "tx-1", p.RemoteID)
		assert.EqualValues(t, 2200, p.Amount)
	})

	t.Run("should return ErrPaymentNotFound when no row exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, order_id, state, remote_id, amount, refunded_amount, currency, created_at, updated_at FROM payments WHERE order_id = \$1`).
			WithArgs("ORDER-404").
			WillReturnError(errors.New("no rows in result set"))

		_, err := repo.GetPaymentForOrder(ctx, "ORDER-404")

		assert.Error(t, err)
	})
}

func TestCreatePayment(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should insert a payment", func(t *testing.T) {
		now := time.Now()
		p := payment.Payment{
			ID: "p-1", OrderID: "ORDER-1", State: payment.StateNew,
			Amount: 2200, Currency: "EUR", CreatedAt: now, UpdatedAt: now,
		}

		mock.ExpectExec(`INSERT INTO payments`).
			WithArgs("p-1", "ORDER-1", payment.StateNew, "", int64(2200), int64(0), "EUR", now, now).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.CreatePayment(ctx, p))
	})
}

func TestUpdatePayment(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should update the mutable columns", func(t *testing.T) {
		now := time.Now()
		p := payment.Payment{
			ID: "p-1", State: payment.StatePartiallyRefunded,
			RemoteID: "tx-1", RefundedAmount: 1000, UpdatedAt: now,
		}

		mock.ExpectExec(`UPDATE payments SET state = \$1, remote_id = \$2, refunded_amount = \$3, updated_at = \$4 WHERE id = \$5`).
			WithArgs(payment.StatePartiallyRefunded, "tx-1", int64(1000), now, "p-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdatePayment(ctx, p))
	})

	t.Run("should return ErrPaymentNotFound when nothing was updated", func(t *testing.T) {
		p := payment.Payment{ID: "p-404", State: payment.StateCompleted}

		mock.ExpectExec(`UPDATE payments`).
			WithArgs(payment.StateCompleted, "", int64(0), p.UpdatedAt, "p-404").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdatePayment(ctx, p)

		assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
	})
}

func TestCreateEvent(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	event := payment.Event{
		EventID:       "e-1",
		OrderID:       "ORDER-1",
		TransactionID: "tx-1",
		Type:          payment.EventCaptured,
		State:         payment.StateCompleted,
		Amount:        2200,
		Channel:       payment.ChannelWebhook,
		CreatedAt:     time.Now(),
	}

	t.Run("should insert an audit event", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO payment_events`).
			WithArgs("e-1", "ORDER-1", "tx-1", payment.EventCaptured,
				payment.StateCompleted, int64(2200), payment.ChannelWebhook, event.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.CreateEvent(ctx, event))
	})

	t.Run("should map a duplicate to ErrEventAlreadyStored", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO payment_events`).
			WithArgs("e-1", "ORDER-1", "tx-1", payment.EventCaptured,
				payment.StateCompleted, int64(2200), payment.ChannelWebhook, event.CreatedAt).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "payment_events_transaction_id_event_type_key"`))

		err := repo.CreateEvent(ctx, event)

		assert.ErrorIs(t, err, apperror.ErrEventAlreadyStored)
	})
}

func TestMarkOrderPaid(t *testing.T) {
	repo, mock := mockRepo(t)
	ctx := context.Background()

	t.Run("should flip the paid flag", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET paid = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(true, "ORDER-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkOrderPaid(ctx, "ORDER-1"))
	})

	t.Run("should return ErrOrderNotFound for an unknown order", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET paid = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(true, "ORDER-404").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.MarkOrderPaid(ctx, "ORDER-404")

		assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
	})
}
