package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/facturas-api/internal/infrastructure/viewcache"
)

// CacheView sirve respuestas GET desde la caché de vistas bajo la ruta lógica
// dada. Cada combinación de query params es una variante; una mutación que
// invalide la ruta descarta todas las variantes y la siguiente petición
// recalcula desde la DB. Solo se cachean respuestas 200.
func CacheView(cache *viewcache.Cache, logicalPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}
		variant := string(c.Request().URI().QueryString())
		if entry, ok := cache.Get(logicalPath, variant); ok {
			c.Set(fiber.HeaderContentType, entry.ContentType)
			c.Set("X-View-Cache", "hit")
			return c.Send(entry.Body)
		}
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusOK {
			cache.Set(logicalPath, variant, c.Response().Body(), string(c.Response().Header.ContentType()))
		}
		c.Set("X-View-Cache", "miss")
		return nil
	}
}
