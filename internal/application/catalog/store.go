// Package catalog implementa el contenedor de estado del catálogo del
// storefront: la lista completa de productos, la vista derivada (filtrada y
// ordenada), el producto seleccionado y las banderas del ciclo de vida de
// carga. Depende de un colaborador de red (Fetcher) para obtener el listado.
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// ErrProductNotFound se devuelve cuando un fetch por id termina bien pero el
// producto no aparece en el listado. El texto es parte del contrato con la UI.
var ErrProductNotFound = errors.New("Product not found")

// genericErrorMessage se muestra cuando el fallo no trae un mensaje usable.
const genericErrorMessage = "An unknown error occurred"

// Fetcher es el puerto de red del catálogo: entrega el listado completo ya
// mapeado al modelo interno. Lo implementa el cliente del API externo.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// State es la foto del estado del catálogo que ven los colaboradores de UI.
//
// Invariante: FilteredProducts es siempre exactamente
// FilterAndSort(Products, SearchQuery, SortOption); ambos campos solo se
// escriben juntos. Las vistas deben renderizar FilteredProducts, Loading y
// Error; nunca leer Products directamente para ordenar.
type State struct {
	Products         []catalog.Product  `json:"products"`
	FilteredProducts []catalog.Product  `json:"filtered_products"`
	SelectedProduct  *catalog.Product   `json:"selected_product"`
	Loading          bool               `json:"loading"`
	Error            string             `json:"error,omitempty"` // "" = sin error
	SearchQuery      string             `json:"search_query"`
	SortOption       catalog.SortOption `json:"sort_option"`
}

// Store contiene el estado del catálogo detrás de un mutex. Construir con
// NewStore e inyectar; estado inicial: listas vacías, sin selección, orden
// "latest".
type Store struct {
	mu      sync.Mutex
	fetcher Fetcher
	state   State

	// gen crece con cada fetch emitido; una respuesta solo se aplica al
	// estado si su token sigue siendo el último (las obsoletas se descartan
	// en silencio, aunque sí se devuelven a su propio llamador).
	gen uint64

	// fetched marca que al menos un FetchAll terminó bien, aunque el
	// catálogo haya llegado vacío; evita reintentos de red en cada lectura.
	fetched bool
}

// NewStore construye el store con su colaborador de red.
func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		state: State{
			Products:         []catalog.Product{},
			FilteredProducts: []catalog.Product{},
			SortOption:       catalog.SortLatest,
		},
	}
}

// State devuelve una copia del estado actual.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Loaded indica si ya hubo una carga exitosa del listado. Un catálogo
// legítimamente vacío también cuenta como cargado.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetched
}

// FetchAll carga el listado completo: marca loading, limpia el error, pide el
// listado al Fetcher y aplica el resultado. Un cuerpo inesperado con HTTP 200
// llega aquí como lista vacía sin error y se trata como éxito; solo fallos de
// transporte/HTTP rechazan.
func (s *Store) FetchAll(ctx context.Context) ([]catalog.Product, error) {
	gen := s.beginFetch()

	products, err := s.fetcher.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return products, err // respuesta obsoleta: no toca el estado
	}
	s.state.Loading = false
	if err != nil {
		s.state.Error = errorMessage(err)
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	s.fetched = true
	s.state.Products = products
	s.state.FilteredProducts = catalog.FilterAndSort(products, s.state.SearchQuery, s.state.SortOption)
	return products, nil
}

// FetchByID resuelve un producto por id (comparado como texto contra el id
// numérico). Primero consulta el listado ya cargado: si está, se resuelve de
// inmediato sin llamada de red. Si no, carga el listado completo y busca ahí;
// si tras un fetch exitoso sigue sin aparecer, rechaza con ErrProductNotFound.
func (s *Store) FetchByID(ctx context.Context, id string) (*catalog.Product, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Error = ""
	if p := findByID(s.state.Products, id); p != nil {
		s.state.Loading = false
		sel := *p
		s.state.SelectedProduct = &sel
		out := sel
		s.mu.Unlock()
		return &out, nil
	}
	s.mu.Unlock()

	products, ferr := s.fetcher.FetchProducts(ctx)

	var found *catalog.Product
	err := ferr
	if err == nil {
		found = findByID(products, id)
		if found == nil {
			err = ErrProductNotFound
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return found, err // respuesta obsoleta: no toca el estado
	}
	s.state.Loading = false
	if err != nil {
		s.state.Error = errorMessage(err)
		return nil, err
	}
	sel := *found
	s.state.SelectedProduct = &sel
	// El llamador recibe su propia copia; mutarla no toca la selección.
	out := sel
	return &out, nil
}

// SetSearchQuery guarda la query tal cual llega y recalcula la vista
// derivada con el orden vigente. El debounce de teclado es responsabilidad
// del llamador, no del store.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = query
	s.state.FilteredProducts = catalog.FilterAndSort(s.state.Products, query, s.state.SortOption)
}

// SetSortOption guarda la opción de orden y recalcula la vista derivada con
// la query vigente. Valores no reconocidos caen en "latest", nunca fallan.
func (s *Store) SetSortOption(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SortOption = catalog.ParseSortOption(option)
	s.state.FilteredProducts = catalog.FilterAndSort(s.state.Products, s.state.SearchQuery, s.state.SortOption)
}

// ClearSelectedProduct anula el producto seleccionado. No toca el listado ni
// la vista derivada.
func (s *Store) ClearSelectedProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedProduct = nil
}

func (s *Store) beginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.Loading = true
	s.state.Error = ""
	return s.gen
}

// snapshot copia el estado; las listas se copian para que el llamador no
// pueda mutar las internas. Requiere s.mu tomado.
func (s *Store) snapshot() State {
	st := s.state
	st.Products = make([]catalog.Product, len(s.state.Products))
	copy(st.Products, s.state.Products)
	st.FilteredProducts = make([]catalog.Product, len(s.state.FilteredProducts))
	copy(st.FilteredProducts, s.state.FilteredProducts)
	if s.state.SelectedProduct != nil {
		cp := *s.state.SelectedProduct
		st.SelectedProduct = &cp
	}
	return st
}

func findByID(products []catalog.Product, id string) *catalog.Product {
	for i := range products {
		if products[i].MatchesID(id) {
			return &products[i]
		}
	}
	return nil
}

func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return genericErrorMessage
	}
	return err.Error()
}
