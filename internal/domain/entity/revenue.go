package entity

// Revenue ingreso mensual para la gráfica del dashboard (tabla de solo lectura,
// poblada por el seed).
type Revenue struct {
	Month   string // "Jan", "Feb", ...
	Revenue int64  // unidades mayores; la gráfica no usa centavos
}
