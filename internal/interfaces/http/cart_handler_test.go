package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	apphttp "github.com/jhoicas/storefront-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildCartApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewCartHandler(cart.NewManager())
	app.Get("/api/cart", h.Get)
	app.Delete("/api/cart", h.Clear)
	app.Post("/api/cart/toggle", h.Toggle)
	app.Post("/api/cart/items", h.AddItem)
	app.Put("/api/cart/items/:index", h.UpdateItem)
	app.Delete("/api/cart/items/:index", h.RemoveItem)
	return app
}

// cartRequest lanza una petición con la cookie de sesión (si existe) y decodifica
// el sobre de la respuesta.
func cartRequest(t *testing.T, app *fiber.App, method, path, cookie string, body any) (*http.Response, dto.Envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	resp.Body.Close()
	return resp, env
}

// cartData re-decodifica el campo data del sobre como CartResponse.
func cartData(t *testing.T, env dto.Envelope) dto.CartResponse {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var out dto.CartResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func addItemBody(productID int, qty int, size, color string) map[string]any {
	return map[string]any{
		"product":  map[string]any{"id": productID, "name": "Camisa", "price": "100"},
		"quantity": qty,
		"size":     size,
		"color":    color,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests carrito vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// La primera petición sin cookie crea la sesión y devuelve un carrito vacío.
func TestCart_PrimeraPeticionCreaSesion(t *testing.T) {
	app := buildCartApp()

	resp, env := cartRequest(t, app, http.MethodGet, "/api/cart", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	var sessionCookie string
	for _, c := range resp.Cookies() {
		if c.Name == "cart_session" {
			sessionCookie = c.Value
		}
	}
	assert.NotEmpty(t, sessionCookie, "debe emitirse la cookie de sesión")

	data := cartData(t, env)
	assert.Empty(t, data.Items)
	assert.False(t, data.Open)
}

// Agregar dos veces la misma variante funde la línea; la respuesta trae el
// carrito resultante.
func TestCart_AgregarMismaVarianteFunde(t *testing.T) {
	app := buildCartApp()

	_, env := cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 1, "M", "azul"))
	require.True(t, env.Status)
	_, env = cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 2, "M", "azul"))

	data := cartData(t, env)
	require.Len(t, data.Items, 1)
	assert.Equal(t, 3, data.Items[0].Quantity)
}

// Sesiones distintas no comparten carrito.
func TestCart_SesionesSeparadas(t *testing.T) {
	app := buildCartApp()

	_, _ = cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 1, "", ""))
	_, env := cartRequest(t, app, http.MethodGet, "/api/cart", "s2", nil)

	assert.Empty(t, cartData(t, env).Items)
}

// Línea sin producto identificable → 400 con detalle por campo.
func TestCart_AgregarSinProductoFallaValidacion(t *testing.T) {
	app := buildCartApp()

	resp, env := cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", map[string]any{"quantity": 2})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Status)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "product.id", env.Errors[0].Field)
}

// Índice no numérico → 400; índice fuera de rango → 200 sin cambios.
func TestCart_IndicesInvalidos(t *testing.T) {
	app := buildCartApp()
	_, _ = cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 2, "", ""))

	resp, _ := cartRequest(t, app, http.MethodPut, "/api/cart/items/abc", "s1", map[string]any{"quantity": 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "índice no numérico es 400")

	resp, env := cartRequest(t, app, http.MethodPut, "/api/cart/items/9", "s1", map[string]any{"quantity": 5})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "fuera de rango es no-op")
	data := cartData(t, env)
	require.Len(t, data.Items, 1)
	assert.Equal(t, 2, data.Items[0].Quantity, "la línea no debe cambiar")
}

func TestCart_ActualizarEliminarYVaciar(t *testing.T) {
	app := buildCartApp()
	_, _ = cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 1, "M", ""))
	_, _ = cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(2, 1, "", ""))

	_, env := cartRequest(t, app, http.MethodPut, "/api/cart/items/0", "s1", map[string]any{"quantity": 4})
	assert.Equal(t, 4, cartData(t, env).Items[0].Quantity)

	_, env = cartRequest(t, app, http.MethodDelete, "/api/cart/items/0", "s1", nil)
	data := cartData(t, env)
	require.Len(t, data.Items, 1)
	assert.Equal(t, 2, data.Items[0].Product.ID)

	_, env = cartRequest(t, app, http.MethodDelete, "/api/cart", "s1", nil)
	assert.Empty(t, cartData(t, env).Items)
}

func TestCart_ToggleAlternaElPanel(t *testing.T) {
	app := buildCartApp()

	_, env := cartRequest(t, app, http.MethodPost, "/api/cart/toggle", "s1", nil)
	assert.True(t, cartData(t, env).Open)

	_, env = cartRequest(t, app, http.MethodPost, "/api/cart/toggle", "s1", nil)
	assert.False(t, cartData(t, env).Open)
}

// El subtotal refleja el precio efectivo del producto agregado.
func TestCart_SubtotalEnLaRespuesta(t *testing.T) {
	app := buildCartApp()

	_, env := cartRequest(t, app, http.MethodPost, "/api/cart/items", "s1", addItemBody(1, 3, "", ""))

	data := cartData(t, env)
	assert.Equal(t, "300", data.Subtotal.String())
}
