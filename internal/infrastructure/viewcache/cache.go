// Package viewcache implementa la caché de vistas renderizadas del dashboard.
// Cada ruta lógica (ej: /dashboard/invoices) agrupa sus variantes (query de
// búsqueda, página); invalidar la ruta descarta todas sus variantes y la
// siguiente petición recalcula desde la DB. Sin TTL: el ciclo de vida lo
// gobierna la invalidación, igual que el resto de mutaciones del dashboard.
package viewcache

import "sync"

// Entry respuesta cacheada lista para servir.
type Entry struct {
	Body        []byte
	ContentType string
}

// Cache caché en memoria por ruta lógica y variante. Segura para uso concurrente.
type Cache struct {
	mu    sync.RWMutex
	paths map[string]map[string]Entry
}

// New construye la caché vacía.
func New() *Cache {
	return &Cache{paths: make(map[string]map[string]Entry)}
}

// Get devuelve la variante cacheada de la ruta, si existe.
func (c *Cache) Get(path, variant string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	variants, ok := c.paths[path]
	if !ok {
		return Entry{}, false
	}
	e, ok := variants[variant]
	return e, ok
}

// Set guarda una variante renderizada de la ruta. El body se copia: el caller
// puede reutilizar su buffer.
func (c *Cache) Set(path, variant string, body []byte, contentType string) {
	buf := make([]byte, len(body))
	copy(buf, body)
	c.mu.Lock()
	defer c.mu.Unlock()
	variants, ok := c.paths[path]
	if !ok {
		variants = make(map[string]Entry)
		c.paths[path] = variants
	}
	variants[variant] = Entry{Body: buf, ContentType: contentType}
}

// Invalidate descarta todas las variantes de la ruta. Mejor esfuerzo: invalidar
// una ruta no cacheada es un no-op silencioso.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.paths, path)
}

// Len devuelve cuántas rutas tienen al menos una variante cacheada.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.paths)
}
