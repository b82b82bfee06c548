package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un pedido (enum order_status en la DB).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// IsValidOrderStatus indica si s es uno de los estados del enum.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa un pedido persistido localmente.
type Order struct {
	ID              int
	UserID          *int
	Status          string
	Total           decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem es una línea del pedido: producto, cantidad y precios al momento de compra.
type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
