// Package catalog modela el catálogo del storefront tal como lo entrega el
// API externo de productos, y la derivación pura (filtro + orden) sobre él.
package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Etiquetas de stock derivadas del campo numérico stock del API externo.
const (
	StockStatusIn  = "In Stock"
	StockStatusOut = "Out of Stock"
)

// Product es un producto del catálogo ya mapeado al modelo interno.
// SellPrice y DiscountPercentage solo existen si el API reportó un descuento.
type Product struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Price              decimal.Decimal  `json:"price"`
	SellPrice          *decimal.Decimal `json:"sell_price,omitempty"`
	Description        string           `json:"description,omitempty"`
	ShortDescription   string           `json:"short_description,omitempty"`
	Img                string           `json:"img"`
	Category           string           `json:"category,omitempty"`
	StockStatus        string           `json:"stock_status,omitempty"`
	IsFeatured         bool             `json:"is_featured"`
	DiscountPercentage *int             `json:"discount_percentage,omitempty"`
	Colors             []string         `json:"colors"`
	Sizes              []string         `json:"sizes"`
	Tags               []string         `json:"tags"`
	CreatedAt          string           `json:"created_at,omitempty"`
	UpdatedAt          string           `json:"updated_at,omitempty"`
}

// EffectivePrice devuelve el precio efectivo: SellPrice si existe, si no Price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SellPrice != nil {
		return *p.SellPrice
	}
	return p.Price
}

// MatchesID compara el id numérico contra su representación string
// (los ids llegan como parámetro de ruta, siempre texto).
func (p Product) MatchesID(id string) bool {
	return strconv.Itoa(p.ID) == id
}

// RawProduct es la forma cruda de un producto en la respuesta del API externo:
// { status: bool, data: { data: [RawProduct] } }.
type RawProduct struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	DiscountAmount string          `json:"discount_amount"`
	ShortDesc      string          `json:"short_desc"`
	Image          string          `json:"image"`
	Category       *RawCategory    `json:"category"`
	Stock          int             `json:"stock"`
	IsPublished    int             `json:"is_published"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// RawCategory categoría anidada dentro de RawProduct.
type RawCategory struct {
	Name string `json:"name"`
}

// FromRaw mapea un producto crudo del API al modelo interno:
//   - SellPrice = Price − descuento, cuando discount_amount trae un entero.
//   - StockStatus según stock > 0.
//   - DiscountPercentage = round(descuento / precio × 100).
//   - Colors/Sizes/Tags siempre inician como listas vacías (el API no los trae).
func FromRaw(r RawProduct) Product {
	p := Product{
		ID:               r.ID,
		Name:             r.Name,
		Price:            r.Price,
		Description:      r.ShortDesc,
		ShortDescription: r.ShortDesc,
		Img:              r.Image,
		StockStatus:      StockStatusOut,
		IsFeatured:       r.IsPublished == 1,
		Colors:           []string{},
		Sizes:            []string{},
		Tags:             []string{},
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.Category != nil {
		p.Category = r.Category.Name
	}
	if r.Stock > 0 {
		p.StockStatus = StockStatusIn
	}
	if discount, ok := parseLeadingInt(r.DiscountAmount); ok {
		sell := r.Price.Sub(decimal.NewFromInt(discount))
		p.SellPrice = &sell
		if !r.Price.IsZero() {
			pct := int(decimal.NewFromInt(discount).
				Div(r.Price).
				Mul(decimal.NewFromInt(100)).
				Round(0).
				IntPart())
			p.DiscountPercentage = &pct
		}
	}
	return p
}

// MapRaw mapea la lista cruda completa.
func MapRaw(raw []RawProduct) []Product {
	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, FromRaw(r))
	}
	return products
}

// parseLeadingInt toma los dígitos iniciales de s como entero, al estilo de
// parseInt: "150" → 150, "150.50" → 150, "abc" → sin valor, "" → sin valor.
func parseLeadingInt(s string) (int64, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
