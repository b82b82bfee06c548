package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
)

// cartSessionCookie identifica el carrito de la sesión del navegador.
const cartSessionCookie = "cart_session"

// CartHandler expone el carrito de la sesión: cada cookie tiene su propio
// Store en memoria, administrado por el Manager.
type CartHandler struct {
	carts *cart.Manager
}

// NewCartHandler construye el handler.
func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{carts: carts}
}

// session devuelve el Store de la sesión, creando cookie y carrito si hace
// falta.
func (h *CartHandler) session(c *fiber.Ctx) *cart.Store {
	// c.Cookies devuelve un string respaldado por el buffer reutilizable de
	// fasthttp; hay que copiarlo antes de retenerlo como clave en el Manager.
	sid := utils.CopyString(c.Cookies(cartSessionCookie))
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     cartSessionCookie,
			Value:    sid,
			Path:     "/",
			Expires:  time.Now().Add(30 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return h.carts.Cart(sid)
}

func cartResponse(s *cart.Store) dto.CartResponse {
	items := s.Items()
	lines := make([]dto.CartLineResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.CartLineResponse{
			Product:  it.Product,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
	}
	return dto.CartResponse{
		Items:    lines,
		Subtotal: s.Subtotal(),
		Open:     s.IsOpen(),
	}
}

// Get godoc
// @Summary      Estado del carrito de la sesión
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.OK("Cart retrieved successfully", cartResponse(h.session(c))))
}

// AddItem godoc
// @Summary      Agregar línea al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto, cantidad, talla y color"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if errs := in.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailWith("Validation error", errs))
	}
	s := h.session(c)
	s.AddItem(in.Product, in.Quantity, in.Size, in.Color)
	return c.JSON(dto.OK("Item added to cart", cartResponse(s)))
}

// UpdateItem godoc
// @Summary      Cambiar la cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "Índice de la línea"
// @Param        body   body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      200    {object}  dto.Envelope
// @Failure      400    {object}  dto.Envelope
// @Router       /api/cart/items/{index} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	index, ok := parseID(c, "index")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid item index"))
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	s := h.session(c)
	// Índices fuera de rango no hacen nada; la respuesta refleja el
	// carrito tal como quedó.
	s.UpdateQuantity(index, in.Quantity)
	return c.JSON(dto.OK("Cart updated successfully", cartResponse(s)))
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        index  path  int  true  "Índice de la línea"
// @Success      200    {object}  dto.Envelope
// @Failure      400    {object}  dto.Envelope
// @Router       /api/cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	index, ok := parseID(c, "index")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid item index"))
	}
	s := h.session(c)
	s.RemoveItem(index)
	return c.JSON(dto.OK("Item removed from cart", cartResponse(s)))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	s := h.session(c)
	s.Clear()
	return c.JSON(dto.OK("Cart cleared", cartResponse(s)))
}

// Toggle godoc
// @Summary      Abrir/cerrar el panel del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/cart/toggle [post]
func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	s := h.session(c)
	s.ToggleOpen()
	return c.JSON(dto.OK("Cart visibility toggled", cartResponse(s)))
}
