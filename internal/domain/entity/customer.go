package entity

// Customer representa un cliente. Desde el flujo de facturación es de solo
// lectura: se referencia por ID y se muestran nombre, email e imagen.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerSummary cliente con los agregados de sus facturas (tabla de clientes).
// Los totales van en centavos.
type CustomerSummary struct {
	Customer
	TotalInvoices int
	TotalPending  int64
	TotalPaid     int64
}
