package dto

// CardsResponse tarjetas resumen del dashboard. Los totales van formateados
// como moneda porque las tarjetas los muestran tal cual.
type CardsResponse struct {
	NumberOfInvoices  int    `json:"number_of_invoices"`
	NumberOfCustomers int    `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}

// RevenueResponse punto de la gráfica de ingresos mensuales.
type RevenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
