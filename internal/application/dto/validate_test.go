package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intp(v int) *int { return &v }

func fields(errs []dto.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateProductRequest
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProductRequest_CamposObligatorios(t *testing.T) {
	errs := dto.CreateProductRequest{}.Validate()

	got := fields(errs)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "price")
	assert.Contains(t, got, "img")
}

func TestCreateProductRequest_RangosInvalidos(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	errs := dto.CreateProductRequest{
		Name:               "Camisa",
		Price:              &neg,
		Img:                "camisa.jpg",
		DiscountPercentage: intp(140),
	}.Validate()

	got := fields(errs)
	assert.Contains(t, got, "price")
	assert.Contains(t, got, "discount_percentage")
}

func TestCreateProductRequest_Valido(t *testing.T) {
	errs := dto.CreateProductRequest{
		Name:  "Camisa",
		Price: dec(100),
		Img:   "camisa.jpg",
	}.Validate()

	assert.Empty(t, errs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateOrderRequest
// ──────────────────────────────────────────────────────────────────────────────

// Los errores de línea nombran el campo con su índice.
func TestCreateOrderRequest_ErroresDeLineaConIndice(t *testing.T) {
	errs := dto.CreateOrderRequest{
		Total: dec(100),
		Items: []dto.OrderItemRequest{
			{ProductID: intp(1), Quantity: intp(1), Price: dec(50), Subtotal: dec(50)},
			{Quantity: intp(0)},
		},
	}.Validate()

	got := fields(errs)
	assert.Contains(t, got, "items[1].product_id")
	assert.Contains(t, got, "items[1].quantity")
	assert.Contains(t, got, "items[1].price")
	assert.NotContains(t, got, "items[0].product_id")
}

func TestCreateOrderRequest_TotalYEstado(t *testing.T) {
	errs := dto.CreateOrderRequest{Status: "enviado"}.Validate()

	got := fields(errs)
	assert.Contains(t, got, "total")
	assert.Contains(t, got, "status")
}

func TestCreateOrderRequest_Valido(t *testing.T) {
	errs := dto.CreateOrderRequest{
		Total:  dec(100),
		Status: "pending",
		Items: []dto.OrderItemRequest{
			{ProductID: intp(1), Quantity: intp(2), Price: dec(50), Subtotal: dec(100)},
		},
	}.Validate()

	assert.Empty(t, errs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ExternalOrderRequest
// ──────────────────────────────────────────────────────────────────────────────

func TestExternalOrderRequest_UpstreamPayloadAplanaLasLineas(t *testing.T) {
	in := dto.ExternalOrderRequest{
		CustomerName:  "Ana",
		CustomerPhone: "300123",
		Address:       "Calle 10",
		Courier:       "redx",
		Items: []dto.ExternalOrderItem{
			{ProductID: intp(12), Quantity: intp(2)},
			{ProductID: intp(13), Quantity: intp(1)},
		},
	}
	require.Empty(t, in.Validate())

	payload := in.UpstreamPayload()

	assert.Equal(t, "12,13", payload["product_ids"])
	assert.Equal(t, "2,1", payload["s_product_qty"])
	assert.Equal(t, "Ana", payload["c_name"])
	assert.Equal(t, "redx", payload["courier"])
	_, tieneCargo := payload["delivery_charge"]
	assert.False(t, tieneCargo, "sin cargo de envío el campo se omite")
}

func TestExternalOrderRequest_SinLineasFalla(t *testing.T) {
	errs := dto.ExternalOrderRequest{
		CustomerName:  "Ana",
		CustomerPhone: "300123",
		Address:       "Calle 10",
	}.Validate()

	assert.Contains(t, fields(errs), "items")
}
