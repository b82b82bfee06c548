package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock mostrados al cliente.
const (
	StockStatusIn  = "In Stock"
	StockStatusOut = "Out of Stock"
)

// Product representa un producto del catálogo local (tabla products).
// SellPrice es el precio rebajado; si está presente y es menor que Price
// la UI muestra el descuento, si no simplemente se omite (no es un error).
type Product struct {
	ID                 int
	Name               string
	Price              decimal.Decimal
	SellPrice          *decimal.Decimal
	Description        string
	ShortDescription   string
	Img                string
	CategoryID         *int
	StockStatus        string
	IsFeatured         bool
	DiscountPercentage *int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
