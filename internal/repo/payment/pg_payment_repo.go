// Package payment_repo persists payments and their audit events. The
// uniqueness constraint on (transaction_id, event_type) is what turns a
// replayed callback into ErrEventAlreadyStored instead of a double apply.
package payment_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/payment"
	"paytrailgw/pkg/postgres"
)

type PgPaymentRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPaymentRepo(pg *postgres.Postgres) payment.Repo {
	return &PgPaymentRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

// InTransaction hands the callback a repository view bound to one
// transaction. The reconciler's read-modify-write runs through this so
// concurrent callbacks for the same order serialize on the payment row.
func (r *PgPaymentRepo) InTransaction(ctx context.Context, fn func(tx payment.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetPaymentForOrder(ctx context.Context, orderID string) (payment.Payment, error) {
	query, args, err := r.builder.
		Select("id", "order_id", "state", "remote_id", "amount",
			"refunded_amount", "currency", "created_at", "updated_at").
		From("payments").
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build payment query: %w", err)
	}

	var (
		p        payment.Payment
		rawState string
	)
	row := r.db.QueryRow(ctx, query, args...)
	err = row.Scan(&p.ID, &p.OrderID, &rawState, &p.RemoteID, &p.Amount,
		&p.RefundedAmount, &p.Currency, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return payment.Payment{}, apperror.ErrPaymentNotFound
	}
	if err != nil {
		return payment.Payment{}, fmt.Errorf("scan payment: %w", err)
	}

	if p.State, err = payment.NewState(rawState); err != nil {
		return payment.Payment{}, fmt.Errorf("payment %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *repo) CreatePayment(ctx context.Context, p payment.Payment) error {
	query, args, err := r.builder.Insert("payments").
		Columns("id", "order_id", "state", "remote_id", "amount",
			"refunded_amount", "currency", "created_at", "updated_at").
		Values(p.ID, p.OrderID, p.State, p.RemoteID, p.Amount,
			p.RefundedAmount, p.Currency, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert payment: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *repo) UpdatePayment(ctx context.Context, p payment.Payment) error {
	query, args, err := r.builder.Update("payments").
		Set("state", p.State).
		Set("remote_id", p.RemoteID).
		Set("refunded_amount", p.RefundedAmount).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update payment: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrPaymentNotFound
	}
	return nil
}

func (r *repo) MarkOrderPaid(ctx context.Context, orderID string) error {
	query, args, err := r.builder.Update("orders").
		Set("paid", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark paid: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *repo) CreateEvent(ctx context.Context, e payment.Event) error {
	query, args, err := r.builder.Insert("payment_events").
		Columns("event_id", "order_id", "transaction_id", "event_type",
			"state", "amount", "channel", "created_at").
		Values(e.EventID, e.OrderID, e.TransactionID, e.Type,
			e.State, e.Amount, e.Channel, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert event: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperror.ErrEventAlreadyStored
		}
		return fmt.Errorf("insert payment event: %w", err)
	}
	return nil
}
