package models

import "time"

// Product is one catalog entry in the shop
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Price       int64     `json:"price" db:"price"` // minor units
	Stock       int       `json:"stock" db:"stock"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// OrderStatus represents the state of a shop order
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
)

// OrderItem is one line of an order
type OrderItem struct {
	ID        string `json:"id" db:"id"`
	OrderID   string `json:"order_id" db:"order_id"`
	ProductID string `json:"product_id" db:"product_id"`
	Name      string `json:"name" db:"name"`
	UnitPrice int64  `json:"unit_price" db:"unit_price"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// Order is a shop purchase assembled from cart lines
type Order struct {
	ID        string      `json:"id" db:"id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Status    OrderStatus `json:"status" db:"status"`
	Total     int64       `json:"total" db:"total"`
	Currency  string      `json:"currency" db:"currency"`
	Items     []OrderItem `json:"items" db:"-"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// CartLine is the inbound shape of one cart entry at checkout
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PaymentOrder mirrors the gateway's order object: amount in minor units
// plus a receipt reference
type PaymentOrder struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
