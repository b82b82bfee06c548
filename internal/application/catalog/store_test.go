package catalog_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	store "github.com/jhoicas/storefront-api/internal/application/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fetcher falso
// ──────────────────────────────────────────────────────────────────────────────

// fakeFetcher entrega respuestas en orden y cuenta las llamadas. Si se define
// block, cada llamada espera a que el test la libere (para simular carreras
// entre fetches).
type fakeFetcher struct {
	mu        sync.Mutex
	responses []fetchResult
	calls     int
	block     chan struct{}
}

type fetchResult struct {
	products []catalog.Product
	err      error
}

func (f *fakeFetcher) FetchProducts(_ context.Context) ([]catalog.Product, error) {
	f.mu.Lock()
	i := f.calls
	f.calls++
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	r := f.responses[i]
	return r.products, r.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func productos(ids ...int) []catalog.Product {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Product{
			ID:    id,
			Name:  "Producto",
			Price: decimal.NewFromInt(int64(id) * 10),
		})
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FetchAll
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchAll_ExitoCargaListadoYVistaDerivada(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1, 2, 3)}}}
	s := store.NewStore(f)

	got, err := s.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 3)

	st := s.State()
	assert.False(t, st.Loading, "loading debe apagarse al terminar")
	assert.Empty(t, st.Error)
	assert.Len(t, st.Products, 3)
	assert.Len(t, st.FilteredProducts, 3, "la vista derivada se recalcula junto al listado")
	assert.True(t, s.Loaded())
}

// Un 200 con cuerpo inesperado llega como lista vacía sin error: éxito con
// catálogo vacío, no un fallo.
func TestFetchAll_CuerpoInesperadoEsExitoVacio(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: []catalog.Product{}}}}
	s := store.NewStore(f)

	got, err := s.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
	st := s.State()
	assert.Empty(t, st.Error)
	assert.False(t, st.Loading)
	assert.True(t, s.Loaded(), "un catálogo vacío también cuenta como cargado")
}

// Tras una carga exitosa vacía no se vuelve a pedir el listado: Loaded
// refleja la carga, no el tamaño del catálogo.
func TestLoaded_CatalogoVacioNoDisparaRecargas(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: []catalog.Product{}}}}
	s := store.NewStore(f)

	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, f.callCount())

	// El patrón de los lectores: solo refetchear si no está cargado.
	if !s.Loaded() {
		_, _ = s.FetchAll(context.Background())
	}
	assert.Equal(t, 1, f.callCount(), "no debe haber un segundo fetch")
}

func TestLoaded_FalloDeRedNoMarcaCargado(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{err: errors.New("connection refused")}}}
	s := store.NewStore(f)

	_, err := s.FetchAll(context.Background())

	require.Error(t, err)
	assert.False(t, s.Loaded(), "un fallo no cuenta como carga")
}

func TestFetchAll_FalloDeRedDejaElMensajeEnElEstado(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{err: errors.New("connection refused")}}}
	s := store.NewStore(f)

	_, err := s.FetchAll(context.Background())

	require.Error(t, err)
	st := s.State()
	assert.Equal(t, "connection refused", st.Error)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Products, "un fallo no toca el listado previo")
}

// Errores sin mensaje usable caen en el texto genérico.
func TestFetchAll_ErrorSinMensajeUsaElGenerico(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{err: errors.New("")}}}
	s := store.NewStore(f)

	_, err := s.FetchAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, "An unknown error occurred", s.State().Error)
}

// Dos fetches en vuelo: la respuesta del primero llega después de emitido el
// segundo y se descarta; solo el último fetch escribe el estado.
func TestFetchAll_RespuestaObsoletaNoTocaElEstado(t *testing.T) {
	block := make(chan struct{})
	f := &fakeFetcher{
		block: block,
		responses: []fetchResult{
			{products: productos(1)},       // primer fetch (quedará obsoleto)
			{products: productos(2, 3, 4)}, // segundo fetch (gana)
		},
	}
	s := store.NewStore(f)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = s.FetchAll(context.Background())
	}()

	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		// Espera a que el primero esté en vuelo antes de emitir el segundo.
		for f.callCount() < 1 {
			runtime.Gosched()
		}
		_, _ = s.FetchAll(context.Background())
	}()

	for f.callCount() < 2 {
		runtime.Gosched()
	}
	// Libera ambas respuestas: la del primer fetch ya es obsoleta porque el
	// segundo se emitió después, así que no importa cuál despierte antes.
	block <- struct{}{}
	block <- struct{}{}
	<-firstDone
	<-secondDone

	st := s.State()
	assert.Len(t, st.Products, 3,
		"solo el fetch más reciente debe quedar en el estado")
	assert.False(t, st.Loading)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FetchByID
// ──────────────────────────────────────────────────────────────────────────────

// Con el listado ya cargado, la selección se resuelve sin llamada de red.
func TestFetchByID_ResuelveDelListadoSinRed(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1, 2, 3)}}}
	s := store.NewStore(f)
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, f.callCount())

	p, err := s.FetchByID(context.Background(), "2")

	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, 1, f.callCount(), "no debe haber un segundo fetch")

	st := s.State()
	require.NotNil(t, st.SelectedProduct)
	assert.Equal(t, 2, st.SelectedProduct.ID)
	assert.False(t, st.Loading)
}

// Sin listado cargado, se trae el listado completo y se busca ahí.
func TestFetchByID_SinListadoCargaYBusca(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(7, 8)}}}
	s := store.NewStore(f)

	p, err := s.FetchByID(context.Background(), "8")

	require.NoError(t, err)
	assert.Equal(t, 8, p.ID)
	assert.Equal(t, 1, f.callCount())
}

// El texto del error es contrato con la UI.
func TestFetchByID_NoEncontradoRechazaConProductNotFound(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1)}}}
	s := store.NewStore(f)

	p, err := s.FetchByID(context.Background(), "99")

	require.Error(t, err)
	assert.Nil(t, p)
	assert.EqualError(t, err, "Product not found")
	assert.Equal(t, "Product not found", s.State().Error)
}

func TestFetchByID_FalloDeRedPropagaElError(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{err: errors.New("timeout")}}}
	s := store.NewStore(f)

	p, err := s.FetchByID(context.Background(), "1")

	require.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, "timeout", s.State().Error)
}

// La copia seleccionada es independiente del listado interno.
func TestFetchByID_DevuelveUnaCopia(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1)}}}
	s := store.NewStore(f)
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	p, err := s.FetchByID(context.Background(), "1")
	require.NoError(t, err)

	p.Name = "mutado"
	st := s.State()
	assert.Equal(t, "Producto", st.Products[0].Name)
	assert.Equal(t, "Producto", st.SelectedProduct.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests búsqueda, orden y selección
// ──────────────────────────────────────────────────────────────────────────────

func TestSetSearchQueryYSortOption_RecalculanLaVista(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "Camisa Azul", Price: decimal.NewFromInt(300)},
		{ID: 2, Name: "Camisa Roja", Price: decimal.NewFromInt(100)},
		{ID: 3, Name: "Pantalón", Price: decimal.NewFromInt(200)},
	}
	f := &fakeFetcher{responses: []fetchResult{{products: products}}}
	s := store.NewStore(f)
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	s.SetSearchQuery("camisa")
	s.SetSortOption("price_low")

	st := s.State()
	require.Len(t, st.FilteredProducts, 2)
	assert.Equal(t, 2, st.FilteredProducts[0].ID, "la vista combina filtro y orden")
	assert.Equal(t, 1, st.FilteredProducts[1].ID)
	assert.Len(t, st.Products, 3, "el listado completo no se toca")
}

func TestSetSortOption_DesconocidoCaeEnLatest(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1, 5, 3)}}}
	s := store.NewStore(f)
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	s.SetSortOption("no-existe")

	st := s.State()
	assert.Equal(t, catalog.SortLatest, st.SortOption)
	assert.Equal(t, 5, st.FilteredProducts[0].ID, "latest ordena por id descendente")
}

func TestClearSelectedProduct_SoloAnulaLaSeleccion(t *testing.T) {
	f := &fakeFetcher{responses: []fetchResult{{products: productos(1, 2)}}}
	s := store.NewStore(f)
	_, err := s.FetchByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, s.State().SelectedProduct)

	s.ClearSelectedProduct()

	st := s.State()
	assert.Nil(t, st.SelectedProduct)
	assert.Len(t, st.Products, 2, "el listado queda intacto")
}

// Estado inicial: listas vacías no nulas, orden latest, sin selección.
func TestNewStore_EstadoInicial(t *testing.T) {
	s := store.NewStore(&fakeFetcher{responses: []fetchResult{{}}})

	st := s.State()
	require.NotNil(t, st.Products)
	require.NotNil(t, st.FilteredProducts)
	assert.Empty(t, st.Products)
	assert.Nil(t, st.SelectedProduct)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Equal(t, catalog.SortLatest, st.SortOption)
	assert.False(t, s.Loaded())
}
