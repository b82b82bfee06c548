package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	catalogstore "github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// OrderPlacer es el puerto de creación de pedidos en el API externo.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, payload any) (json.RawMessage, error)
}

// StorefrontHandler expone el estado del catálogo del storefront: listado
// filtrado/ordenado, producto seleccionado y el reenvío de pedidos al API
// externo.
type StorefrontHandler struct {
	store  *catalogstore.Store
	orders OrderPlacer
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(store *catalogstore.Store, orders OrderPlacer) *StorefrontHandler {
	return &StorefrontHandler{store: store, orders: orders}
}

// Products godoc
// @Summary      Estado del catálogo (filtrado y ordenado)
// @Tags         storefront
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre/descripción"
// @Param        sort    query  string  false  "latest | price_low | price_high | popularity"
// @Success      200     {object}  dto.Envelope
// @Router       /api/storefront/products [get]
func (h *StorefrontHandler) Products(c *fiber.Ctx) error {
	if q := c.Query("search"); c.Request().URI().QueryArgs().Has("search") || q != "" {
		h.store.SetSearchQuery(q)
	}
	if opt := c.Query("sort"); opt != "" {
		h.store.SetSortOption(opt)
	}
	if !h.store.Loaded() {
		// El resultado queda reflejado en el estado (Loading/Error); un
		// fallo de red no tumba la respuesta, la UI lo lee del snapshot.
		_, _ = h.store.FetchAll(c.Context())
	}
	return c.JSON(dto.OK("Catalog state retrieved successfully", h.store.State()))
}

// ProductByID godoc
// @Summary      Seleccionar un producto del catálogo por id
// @Tags         storefront
// @Produce      json
// @Param        id   path  string  true  "ID del producto (numérico como string)"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/storefront/products/{id} [get]
func (h *StorefrontHandler) ProductByID(c *fiber.Ctx) error {
	product, err := h.store.FetchByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == catalogstore.ErrProductNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK("Product retrieved successfully", product))
}

// ClearSelected godoc
// @Summary      Limpiar el producto seleccionado
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/storefront/selected [delete]
func (h *StorefrontHandler) ClearSelected(c *fiber.Ctx) error {
	h.store.ClearSelectedProduct()
	return c.JSON(dto.OK("Selected product cleared", nil))
}

// PlaceExternalOrder godoc
// @Summary      Crear pedido en el API externo
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExternalOrderRequest  true  "Pedido"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      500   {object}  dto.Envelope
// @Router       /api/orders/external [post]
func (h *StorefrontHandler) PlaceExternalOrder(c *fiber.Ctx) error {
	var in dto.ExternalOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailWith("Validation error", errs))
	}
	body, err := h.orders.PlaceOrder(c.Context(), in.UpstreamPayload())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to place order"))
	}
	// La respuesta del API externo se devuelve tal cual.
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
