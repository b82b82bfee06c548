// Package cart implementa el carrito de compras del storefront: un contenedor
// de estado con las líneas del carrito y la bandera de visibilidad del panel.
// Todo el estado mutable es propiedad exclusiva del Store y se accede solo a
// través de sus operaciones.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// LineItem es una línea del carrito: producto (copiado por valor al momento de
// agregar), cantidad y variante elegida. La identidad de una línea es la tupla
// (id de producto, talla, color).
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// Store contiene el estado del carrito. Construir con NewStore e inyectar
// donde se necesite; el estado inicial es carrito vacío y panel cerrado.
type Store struct {
	mu    sync.Mutex
	items []LineItem
	open  bool
}

// NewStore construye un carrito vacío.
func NewStore() *Store {
	return &Store{}
}

// AddItem agrega quantity unidades del producto con la variante indicada.
// Si ya existe una línea con la misma tupla (id, talla, color) incrementa su
// cantidad en lugar de crear otra línea; si no, agrega una línea nueva al
// final. Cantidades menores a 1 se ajustan a 1.
func (s *Store) AddItem(product catalog.Product, quantity int, size, color string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		it := &s.items[i]
		if it.Product.ID == product.ID && it.Size == size && it.Color == color {
			it.Quantity += quantity
			return
		}
	}
	s.items = append(s.items, LineItem{
		Product:  product,
		Quantity: quantity,
		Size:     size,
		Color:    color,
	})
}

// RemoveItem elimina la línea en la posición index.
// Índice fuera de rango: no-op (política permisiva, documentada).
func (s *Store) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// UpdateQuantity fija la cantidad de la línea en index a max(1, quantity).
// Índice fuera de rango: no-op.
func (s *Store) UpdateQuantity(index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	s.items[index].Quantity = quantity
}

// Clear vacía el carrito incondicionalmente. Idempotente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// ToggleOpen alterna la visibilidad del panel del carrito y devuelve el nuevo
// valor. Estado puramente de UI, sin significado de negocio.
func (s *Store) ToggleOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// IsOpen indica si el panel del carrito está visible.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items devuelve una copia de las líneas del carrito.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len devuelve el número de líneas (no de unidades).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subtotal suma precio efectivo × cantidad de todas las líneas.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
