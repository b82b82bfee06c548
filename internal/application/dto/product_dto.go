package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo local.
type CreateProductRequest struct {
	Name               string           `json:"name" validate:"required,min=1,max=200"`
	Price              *decimal.Decimal `json:"price" validate:"required"`
	SellPrice          *decimal.Decimal `json:"sell_price"`
	Description        string           `json:"description"`
	ShortDescription   string           `json:"short_description"`
	Img                string           `json:"img" validate:"required"`
	CategoryID         *int             `json:"category_id"`
	StockStatus        string           `json:"stock_status"`
	IsFeatured         *bool            `json:"is_featured"`
	DiscountPercentage *int             `json:"discount_percentage"`
}

// Validate verifica los campos obligatorios y rangos; devuelve un error por campo.
func (r CreateProductRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name es requerido"})
	}
	if r.Price == nil {
		errs = append(errs, FieldError{Field: "price", Message: "price es requerido"})
	} else if r.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price no puede ser negativo"})
	}
	if r.Img == "" {
		errs = append(errs, FieldError{Field: "img", Message: "img es requerido"})
	}
	if r.DiscountPercentage != nil && (*r.DiscountPercentage < 0 || *r.DiscountPercentage > 100) {
		errs = append(errs, FieldError{Field: "discount_percentage", Message: "debe estar entre 0 y 100"})
	}
	return errs
}

// UpdateProductRequest entrada para actualizar un producto (actualización parcial).
type UpdateProductRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price              *decimal.Decimal `json:"price"`
	SellPrice          *decimal.Decimal `json:"sell_price"`
	Description        *string          `json:"description"`
	ShortDescription   *string          `json:"short_description"`
	Img                *string          `json:"img"`
	CategoryID         *int             `json:"category_id"`
	StockStatus        *string          `json:"stock_status"`
	IsFeatured         *bool            `json:"is_featured"`
	DiscountPercentage *int             `json:"discount_percentage"`
}

// ProductResponse salida de un producto del catálogo local.
type ProductResponse struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Price              decimal.Decimal  `json:"price"`
	SellPrice          *decimal.Decimal `json:"sell_price,omitempty"`
	Description        string           `json:"description,omitempty"`
	ShortDescription   string           `json:"short_description,omitempty"`
	Img                string           `json:"img"`
	CategoryID         *int             `json:"category_id,omitempty"`
	StockStatus        string           `json:"stock_status"`
	IsFeatured         bool             `json:"is_featured"`
	DiscountPercentage *int             `json:"discount_percentage,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
