package cart

import "sync"

// Manager mantiene un carrito por sesión del storefront. Cada sesión obtiene
// su propio Store construido bajo demanda; no hay estado compartido entre
// carritos.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewManager construye el manager sin sesiones.
func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Cart devuelve el carrito de la sesión, creándolo si no existe.
func (m *Manager) Cart(sessionID string) *Store {
	m.mu.RLock()
	s, ok := m.stores[sessionID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s = NewStore()
	m.stores[sessionID] = s
	return s
}
