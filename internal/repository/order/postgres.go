package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"neonburro-api/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// Create inserts the order and its lines in one transaction. A replayed
// completion for the same payment intent is a no-op rather than a duplicate.
func (r *postgresRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
INSERT INTO orders (number, payment_intent_id, payment_method, first_name, project_name, email, phone, billing_address, billing_city, billing_zip, total_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (payment_intent_id) DO NOTHING
`
	tag, err := tx.Exec(ctx, orderQuery,
		order.Number,
		order.PaymentIntentID,
		order.PaymentMethod,
		order.FirstName,
		order.ProjectName,
		order.Email,
		order.Phone,
		order.BillingAddress,
		order.BillingCity,
		order.BillingZip,
		order.TotalCents,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already recorded for this intent.
		return tx.Commit(ctx)
	}

	const lineQuery = `
INSERT INTO order_lines (order_number, product_id, name, price_cents, quantity, size, design, tier)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	for _, l := range order.Lines {
		if _, err := tx.Exec(ctx, lineQuery,
			order.Number, l.ProductID, l.Name, l.PriceCents, l.Quantity, l.Size, l.Design, l.Tier,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	const q = `
SELECT number, payment_intent_id, payment_method, first_name, project_name, email, phone, billing_address, billing_city, billing_zip, total_cents, created_at
FROM orders
WHERE number = $1
`
	return r.fetchOrder(ctx, q, number)
}

func (r *postgresRepo) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error) {
	const q = `
SELECT number, payment_intent_id, payment_method, first_name, project_name, email, phone, billing_address, billing_city, billing_zip, total_cents, created_at
FROM orders
WHERE payment_intent_id = $1
`
	return r.fetchOrder(ctx, q, intentID)
}

func (r *postgresRepo) fetchOrder(ctx context.Context, query, arg string) (*domain.Order, error) {
	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&order.Number,
		&order.PaymentIntentID,
		&order.PaymentMethod,
		&order.FirstName,
		&order.ProjectName,
		&order.Email,
		&order.Phone,
		&order.BillingAddress,
		&order.BillingCity,
		&order.BillingZip,
		&order.TotalCents,
		&order.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const linesQuery = `
SELECT product_id, name, price_cents, quantity, size, design, tier
FROM order_lines
WHERE order_number = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, linesQuery, order.Number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.PriceCents, &l.Quantity, &l.Size, &l.Design, &l.Tier); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}
