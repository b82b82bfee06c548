// Package refabry implementa el cliente del API externo de productos
// (admin.refabry.com). Expone el listado mapeado al modelo interno para el
// store del catálogo, el cuerpo crudo para los endpoints proxy, y el envío
// de pedidos al endpoint público de creación.
package refabry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/catalog"
	catalogdomain "github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// Rutas del API externo.
const (
	productListPath = "/api/all/product/get"
	orderCreatePath = "/api/public/order/create"
)

// Verificar en tiempo de compilación que Client implementa el puerto del catálogo.
var _ catalog.Fetcher = (*Client)(nil)

// Client cliente HTTP del API externo. Usa net/http de la librería estándar;
// no requiere SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. timeout limita cada petición a nivel de red;
// las operaciones además respetan el context recibido.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// listEnvelope es la forma esperada de la respuesta del listado:
// { status: bool, data: { data: [RawProduct] } }.
type listEnvelope struct {
	Status bool `json:"status"`
	Data   *struct {
		Data []catalogdomain.RawProduct `json:"data"`
	} `json:"data"`
}

// FetchProducts obtiene el listado completo y lo mapea al modelo interno.
//
// Contrato de errores: fallo de transporte o HTTP no-2xx → error (el store lo
// refleja como rechazo); respuesta 2xx con cuerpo inesperado (sin status o sin
// data.data, o JSON no decodificable) → lista vacía SIN error, igual que hace
// el consumidor original del API.
func (c *Client) FetchProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	body, err := c.get(ctx, productListPath)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []catalogdomain.Product{}, nil
	}
	if !envelope.Status || envelope.Data == nil || envelope.Data.Data == nil {
		return []catalogdomain.Product{}, nil
	}
	return catalogdomain.MapRaw(envelope.Data.Data), nil
}

// FetchProductsRaw devuelve el cuerpo del listado tal cual lo entrega el API,
// para los endpoints proxy que reenvían la respuesta sin tocarla.
func (c *Client) FetchProductsRaw(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, productListPath)
}

// PlaceOrder envía el pedido al endpoint público del API externo y devuelve
// la respuesta cruda ({ status, message, data? }).
func (c *Client) PlaceOrder(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("upstream: serializar pedido: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderCreatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("upstream: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: enviar pedido: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream: HTTP %d al crear pedido", resp.StatusCode)
	}
	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: crear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream: leer respuesta: %w", err)
	}
	return body, nil
}
