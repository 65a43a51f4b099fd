package viewcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/facturas-api/internal/infrastructure/viewcache"
)

func TestCache_GetDevuelveLoGuardado(t *testing.T) {
	c := viewcache.New()

	c.Set("/dashboard/invoices", "query=delba&page=1", []byte(`{"invoices":[]}`), "application/json")

	entry, ok := c.Get("/dashboard/invoices", "query=delba&page=1")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"invoices":[]}`), entry.Body)
	assert.Equal(t, "application/json", entry.ContentType)
}

// Variantes distintas de la misma ruta no se pisan entre sí.
func TestCache_VariantesIndependientes(t *testing.T) {
	c := viewcache.New()

	c.Set("/dashboard/invoices", "page=1", []byte("pagina uno"), "application/json")
	c.Set("/dashboard/invoices", "page=2", []byte("pagina dos"), "application/json")

	uno, ok := c.Get("/dashboard/invoices", "page=1")
	require.True(t, ok)
	assert.Equal(t, "pagina uno", string(uno.Body))

	dos, ok := c.Get("/dashboard/invoices", "page=2")
	require.True(t, ok)
	assert.Equal(t, "pagina dos", string(dos.Body))
}

// Invalidar la ruta descarta todas sus variantes de una sola vez.
func TestCache_InvalidateDescartaTodasLasVariantes(t *testing.T) {
	c := viewcache.New()
	c.Set("/dashboard/invoices", "page=1", []byte("a"), "application/json")
	c.Set("/dashboard/invoices", "page=2", []byte("b"), "application/json")
	c.Set("/dashboard/customers", "", []byte("c"), "application/json")

	c.Invalidate("/dashboard/invoices")

	_, ok := c.Get("/dashboard/invoices", "page=1")
	assert.False(t, ok)
	_, ok = c.Get("/dashboard/invoices", "page=2")
	assert.False(t, ok)
	_, ok = c.Get("/dashboard/customers", "")
	assert.True(t, ok, "invalidar una ruta no toca las demás")
	assert.Equal(t, 1, c.Len())
}

// Invalidar una ruta que nunca se cacheó es un no-op.
func TestCache_InvalidateRutaAusente(t *testing.T) {
	c := viewcache.New()
	assert.NotPanics(t, func() { c.Invalidate("/dashboard/invoices") })
	assert.Zero(t, c.Len())
}

// El body se copia al guardar: mutar el buffer original no corrompe la caché.
func TestCache_SetCopiaElBody(t *testing.T) {
	c := viewcache.New()
	buf := []byte("original")

	c.Set("/ruta", "", buf, "text/plain")
	buf[0] = 'X'

	entry, _ := c.Get("/ruta", "")
	assert.Equal(t, "original", string(entry.Body))
}

// Lecturas, escrituras e invalidaciones concurrentes no deben romper nada
// (correr con -race).
func TestCache_AccesoConcurrente(t *testing.T) {
	c := viewcache.New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			variant := fmt.Sprintf("page=%d", n%4)
			c.Set("/dashboard/invoices", variant, []byte("body"), "application/json")
			c.Get("/dashboard/invoices", variant)
			if n%8 == 0 {
				c.Invalidate("/dashboard/invoices")
			}
		}(i)
	}
	wg.Wait()
}
