package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/montirku/montirku/internal/pkg/errs"
	"github.com/montirku/montirku/internal/pkg/models"
)

// ShopRepo implements the shop repository against PostgreSQL
type ShopRepo struct {
	db *sqlx.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *sqlx.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

// ListProducts retrieves the catalog, optionally filtered by category
func (r *ShopRepo) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	query := `
		SELECT id, name, description, category, price, stock, image_url, created_at, updated_at
		FROM products
	`
	args := []interface{}{}
	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY name"

	var products []*models.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, errs.Transient("failed to list products", err)
	}

	return products, nil
}

// GetProduct retrieves one product by ID
func (r *ShopRepo) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, name, description, category, price, stock, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFoundf("product %s not found", productID)
		}
		return nil, errs.Transient("failed to find product", err)
	}

	return &product, nil
}

// CreateOrder inserts the order and its items in one transaction. Stock is
// decremented with a guard in the UPDATE itself so two concurrent checkouts
// cannot both take the last unit.
func (r *ShopRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Transient("failed to begin transaction", err)
	}
	defer tx.Rollback()

	insertOrder := `
		INSERT INTO orders (id, user_id, status, total, currency, created_at, updated_at)
		VALUES (:id, :user_id, :status, :total, :currency, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, insertOrder, order); err != nil {
		return errs.Transient("failed to insert order", err)
	}

	insertItem := `
		INSERT INTO order_items (id, order_id, product_id, name, unit_price, quantity)
		VALUES (:id, :order_id, :product_id, :name, :unit_price, :quantity)
	`
	decrementStock := `
		UPDATE products SET stock = stock - $1, updated_at = $2
		WHERE id = $3 AND stock >= $1
	`

	for _, item := range order.Items {
		if _, err := tx.NamedExecContext(ctx, insertItem, item); err != nil {
			return errs.Transient("failed to insert order item", err)
		}

		result, err := tx.ExecContext(ctx, decrementStock, item.Quantity, time.Now(), item.ProductID)
		if err != nil {
			return errs.Transient("failed to decrement stock", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return errs.Transient("failed to read update result", err)
		}
		if affected == 0 {
			return errs.Validationf("insufficient stock for %s", item.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return errs.Transient("failed to commit order", err)
	}

	return nil
}

// GetOrder retrieves an order with its items
func (r *ShopRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	query := `
		SELECT id, user_id, status, total, currency, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFoundf("order %s not found", orderID)
		}
		return nil, errs.Transient("failed to find order", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
	`
	if err := r.db.SelectContext(ctx, &order.Items, itemsQuery, orderID); err != nil {
		return nil, errs.Transient("failed to load order items", err)
	}

	return &order, nil
}

// ListOrdersByUser retrieves a user's orders, newest first, without items
func (r *ShopRepo) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, status, total, currency, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var orders []*models.Order
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, errs.Transient("failed to list orders", err)
	}

	return orders, nil
}

// MarkOrderPaid moves an order from created to paid. The status guard keeps
// a replayed callback from rewriting a paid order.
func (r *ShopRepo) MarkOrderPaid(ctx context.Context, orderID string) error {
	query := `
		UPDATE orders SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.OrderStatusPaid, time.Now(), orderID, models.OrderStatusCreated)
	if err != nil {
		return errs.Transient("failed to mark order paid", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errs.Transient("failed to read update result", err)
	}
	if affected == 0 {
		return errs.InvalidTransition(fmt.Sprintf("order %s is not awaiting payment", orderID))
	}

	return nil
}
