package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// AddCartItemRequest entrada para agregar una línea al carrito. Product es el
// producto completo tal como lo entrega el catálogo; la línea se funde con
// otra existente si coinciden producto, talla y color.
type AddCartItemRequest struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
}

// Validate verifica que la línea traiga un producto identificable.
func (r AddCartItemRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Product.ID == 0 {
		errs = append(errs, FieldError{Field: "product.id", Message: "product.id es requerido"})
	}
	return errs
}

// UpdateCartItemRequest entrada para cambiar la cantidad de una línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito en respuestas.
type CartLineResponse struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// CartResponse estado completo del carrito de la sesión.
type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Open     bool               `json:"open"`
}
