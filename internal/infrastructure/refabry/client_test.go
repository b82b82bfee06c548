package refabry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/infrastructure/refabry"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *refabry.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return refabry.NewClient(srv.URL, 5*time.Second)
}

const listadoOK = `{
	"status": true,
	"data": {
		"data": [
			{"id": 12, "name": "Hoodie", "price": "1450", "discount_amount": "150", "stock": 5, "is_published": 1},
			{"id": 13, "name": "Camisa", "price": "300", "discount_amount": "", "stock": 0, "is_published": 0}
		]
	}
}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests FetchProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchProducts_MapeaElListado(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/all/product/get", r.URL.Path)
		_, _ = w.Write([]byte(listadoOK))
	})

	products, err := c.FetchProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 12, products[0].ID)
	require.NotNil(t, products[0].SellPrice, "con descuento debe calcularse sell_price")
	assert.Equal(t, "1300", products[0].SellPrice.String())
	assert.Equal(t, "In Stock", products[0].StockStatus)
	assert.Equal(t, "Out of Stock", products[1].StockStatus)
	assert.Nil(t, products[1].SellPrice)
}

// 200 con cuerpo inesperado: lista vacía SIN error; solo transporte/HTTP
// rechazan.
func TestFetchProducts_CuerpoInesperadoEsListaVaciaSinError(t *testing.T) {
	cuerpos := []string{
		`no es json`,
		`{"status": false}`,
		`{"status": true, "data": null}`,
		`{"status": true, "data": {"data": null}}`,
	}
	for _, cuerpo := range cuerpos {
		body := cuerpo
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		products, err := c.FetchProducts(context.Background())

		require.NoError(t, err, "cuerpo %q no debe producir error", cuerpo)
		require.NotNil(t, products)
		assert.Empty(t, products)
	}
}

func TestFetchProducts_HTTPNo2xxEsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	products, err := c.FetchProducts(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchProductsRaw_DevuelveElCuerpoTalCual(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listadoOK))
	})

	raw, err := c.FetchProductsRaw(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, listadoOK, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_EnviaElPayloadYDevuelveLaRespuesta(t *testing.T) {
	var recibido map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/public/order/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		_, _ = w.Write([]byte(`{"status":true,"message":"Order created"}`))
	})

	resp, err := c.PlaceOrder(context.Background(), map[string]any{"c_name": "Ana", "product_ids": "12"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":true,"message":"Order created"}`, string(resp))
	assert.Equal(t, "Ana", recibido["c_name"])
}

func TestPlaceOrder_HTTPNo2xxEsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := c.PlaceOrder(context.Background(), map[string]any{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestPlaceOrder_RespetaElContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.PlaceOrder(ctx, map[string]any{})

	require.Error(t, err)
}
