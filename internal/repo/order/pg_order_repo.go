// Package order_repo persists order snapshots, the correlation stamp, the
// paid flag and the notification retry counter.
package order_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"paytrailgw/internal/controller/apperror"
	"paytrailgw/internal/domain/order"
	"paytrailgw/pkg/postgres"
)

type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.Repo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrder(ctx context.Context, id string) (order.Order, error) {
	query, args, err := r.builder.
		Select("id", "total_number::text", "total_currency", "customer_email",
			"adjustments", "stamp", "paid", "notify_tries", "created_at", "updated_at").
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	var (
		ord         order.Order
		totalNumber string
		adjustments []byte
	)
	row := r.db.QueryRow(ctx, query, args...)
	err = row.Scan(&ord.ID, &totalNumber, &ord.Total.Currency, &ord.CustomerEmail,
		&adjustments, &ord.Stamp, &ord.Paid, &ord.NotifyTries, &ord.CreatedAt, &ord.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, apperror.ErrOrderNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("scan order: %w", err)
	}

	if ord.Total, err = order.NewPrice(totalNumber, ord.Total.Currency); err != nil {
		return order.Order{}, fmt.Errorf("parse order total: %w", err)
	}
	if len(adjustments) > 0 {
		if err = json.Unmarshal(adjustments, &ord.Adjustments); err != nil {
			return order.Order{}, fmt.Errorf("decode order adjustments: %w", err)
		}
	}

	if ord.Items, err = r.getItems(ctx, id); err != nil {
		return order.Order{}, err
	}
	return ord, nil
}

func (r *repo) getItems(ctx context.Context, orderID string) ([]order.Item, error) {
	query, args, err := r.builder.
		Select("sku", "title", "quantity", "unit_price_number::text", "unit_price_currency", "adjustments").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var (
			item        order.Item
			unitNumber  string
			adjustments []byte
		)
		if err = rows.Scan(&item.SKU, &item.Title, &item.Quantity,
			&unitNumber, &item.UnitPrice.Currency, &adjustments); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if item.UnitPrice, err = order.NewPrice(unitNumber, item.UnitPrice.Currency); err != nil {
			return nil, fmt.Errorf("parse item price: %w", err)
		}
		if len(adjustments) > 0 {
			if err = json.Unmarshal(adjustments, &item.Adjustments); err != nil {
				return nil, fmt.Errorf("decode item adjustments: %w", err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PgOrderRepo) CreateOrder(ctx context.Context, o order.Order) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := repo{db: tx, builder: r.pg.Builder}
		return txRepo.createOrder(ctx, o)
	})
}

func (r *repo) createOrder(ctx context.Context, o order.Order) error {
	adjustments, err := json.Marshal(o.Adjustments)
	if err != nil {
		return fmt.Errorf("encode order adjustments: %w", err)
	}

	query, args, err := r.builder.Insert("orders").
		Columns("id", "total_number", "total_currency", "customer_email",
			"adjustments", "stamp", "paid", "notify_tries", "created_at", "updated_at").
		Values(o.ID, o.Total.Number, o.Total.Currency, o.CustomerEmail,
			adjustments, o.Stamp, o.Paid, o.NotifyTries, o.CreatedAt, o.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert order: %w", err)
	}
	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for position, item := range o.Items {
		itemAdjustments, err := json.Marshal(item.Adjustments)
		if err != nil {
			return fmt.Errorf("encode item adjustments: %w", err)
		}

		query, args, err := r.builder.Insert("order_items").
			Columns("order_id", "position", "sku", "title", "quantity",
				"unit_price_number", "unit_price_currency", "adjustments").
			Values(o.ID, position, item.SKU, item.Title, item.Quantity,
				item.UnitPrice.Number, item.UnitPrice.Currency, itemAdjustments).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert item: %w", err)
		}
		if _, err = r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *repo) SetStamp(ctx context.Context, id, stamp string) error {
	query, args, err := r.builder.Update("orders").
		Set("stamp", stamp).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set stamp: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set stamp: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *repo) IncrementNotifyTries(ctx context.Context, id string) (int, error) {
	query, args, err := r.builder.Update("orders").
		Set("notify_tries", squirrel.Expr("notify_tries + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING notify_tries").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build increment tries: %w", err)
	}

	var tries int
	err = r.db.QueryRow(ctx, query, args...).Scan(&tries)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.ErrOrderNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment tries: %w", err)
	}
	return tries, nil
}
