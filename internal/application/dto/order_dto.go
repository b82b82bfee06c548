package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear un pedido con sus líneas.
// El cuerpo es un tipo estructurado y validado en la frontera; no se aceptan
// objetos arbitrarios.
type CreateOrderRequest struct {
	UserID          *int               `json:"user_id"`
	Status          string             `json:"status"`
	Total           *decimal.Decimal   `json:"total" validate:"required"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest línea del pedido en la petición de creación.
type OrderItemRequest struct {
	ProductID *int             `json:"product_id" validate:"required"`
	Quantity  *int             `json:"quantity" validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	Subtotal  *decimal.Decimal `json:"subtotal" validate:"required"`
}

// Validate verifica pedido y líneas campo a campo; devuelve un error por campo.
func (r CreateOrderRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Total == nil {
		errs = append(errs, FieldError{Field: "total", Message: "total es requerido"})
	} else if r.Total.IsNegative() {
		errs = append(errs, FieldError{Field: "total", Message: "total no puede ser negativo"})
	}
	if r.Status != "" && !entity.IsValidOrderStatus(r.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "status debe ser pending, processing, completed o cancelled"})
	}
	for i, it := range r.Items {
		errs = append(errs, it.validate(i)...)
	}
	return errs
}

func (it OrderItemRequest) validate(index int) []FieldError {
	field := func(name string) string {
		return "items[" + strconv.Itoa(index) + "]." + name
	}
	var errs []FieldError
	if it.ProductID == nil {
		errs = append(errs, FieldError{Field: field("product_id"), Message: "product_id es requerido"})
	}
	if it.Quantity == nil {
		errs = append(errs, FieldError{Field: field("quantity"), Message: "quantity es requerido"})
	} else if *it.Quantity < 1 {
		errs = append(errs, FieldError{Field: field("quantity"), Message: "quantity debe ser al menos 1"})
	}
	if it.Price == nil {
		errs = append(errs, FieldError{Field: field("price"), Message: "price es requerido"})
	}
	if it.Subtotal == nil {
		errs = append(errs, FieldError{Field: field("subtotal"), Message: "subtotal es requerido"})
	}
	return errs
}

// ExternalOrderRequest pedido que se reenvía al API externo de productos.
// El proxy original aceptaba un objeto arbitrario; aquí la frontera exige un
// cuerpo estructurado y validado antes de reenviar.
type ExternalOrderRequest struct {
	CustomerName   string              `json:"c_name" validate:"required"`
	CustomerPhone  string              `json:"c_phone" validate:"required"`
	Address        string              `json:"address" validate:"required"`
	Courier        string              `json:"courier"`
	DeliveryCharge *decimal.Decimal    `json:"delivery_charge"`
	Items          []ExternalOrderItem `json:"items" validate:"required,min=1"`
}

// ExternalOrderItem línea del pedido externo.
type ExternalOrderItem struct {
	ProductID *int `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity" validate:"required,min=1"`
}

// Validate verifica el pedido externo campo a campo.
func (r ExternalOrderRequest) Validate() []FieldError {
	var errs []FieldError
	if r.CustomerName == "" {
		errs = append(errs, FieldError{Field: "c_name", Message: "c_name es requerido"})
	}
	if r.CustomerPhone == "" {
		errs = append(errs, FieldError{Field: "c_phone", Message: "c_phone es requerido"})
	}
	if r.Address == "" {
		errs = append(errs, FieldError{Field: "address", Message: "address es requerido"})
	}
	if r.DeliveryCharge != nil && r.DeliveryCharge.IsNegative() {
		errs = append(errs, FieldError{Field: "delivery_charge", Message: "delivery_charge no puede ser negativo"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "items debe tener al menos una línea"})
	}
	for i, it := range r.Items {
		field := func(name string) string {
			return "items[" + strconv.Itoa(i) + "]." + name
		}
		if it.ProductID == nil {
			errs = append(errs, FieldError{Field: field("product_id"), Message: "product_id es requerido"})
		}
		if it.Quantity == nil {
			errs = append(errs, FieldError{Field: field("quantity"), Message: "quantity es requerido"})
		} else if *it.Quantity < 1 {
			errs = append(errs, FieldError{Field: field("quantity"), Message: "quantity debe ser al menos 1"})
		}
	}
	return errs
}

// UpstreamPayload traduce el pedido al formato plano que espera el API
// externo: ids y cantidades como listas separadas por coma.
func (r ExternalOrderRequest) UpstreamPayload() map[string]any {
	ids := make([]string, 0, len(r.Items))
	qtys := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		if it.ProductID == nil || it.Quantity == nil {
			continue
		}
		ids = append(ids, strconv.Itoa(*it.ProductID))
		qtys = append(qtys, strconv.Itoa(*it.Quantity))
	}
	payload := map[string]any{
		"product_ids":   strings.Join(ids, ","),
		"s_product_qty": strings.Join(qtys, ","),
		"c_name":        r.CustomerName,
		"c_phone":       r.CustomerPhone,
		"address":       r.Address,
	}
	if r.Courier != "" {
		payload["courier"] = r.Courier
	}
	if r.DeliveryCharge != nil {
		payload["delivery_charge"] = r.DeliveryCharge.String()
	}
	return payload
}

// UpdateOrderStatusRequest entrada para cambiar el estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              int                 `json:"id"`
	UserID          *int                `json:"user_id,omitempty"`
	Status          string              `json:"status"`
	Total           decimal.Decimal     `json:"total"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderItemResponse línea del pedido en respuestas.
type OrderItemResponse struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
