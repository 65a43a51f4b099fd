package billing

// ViewInvalidator marca como obsoleta la salida cacheada de una ruta lógica
// para que la siguiente petición la recalcule desde la DB. Fire-and-forget:
// sin acuse, sin rollback, mejor esfuerzo.
type ViewInvalidator interface {
	Invalidate(path string)
}
