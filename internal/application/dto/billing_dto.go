package dto

// InvoiceForm envío crudo del formulario de factura. Todos los campos llegan
// como texto sin tipar; el esquema de validación es quien los tipa y normaliza.
// No hay campos id ni date: el id lo asigna la DB y la fecha la fija el flujo
// de creación (inmutable al actualizar).
type InvoiceForm struct {
	CustomerID string `json:"customer_id" form:"customer_id"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

// FieldErrors errores de validación agrupados por campo, un mensaje legible por
// cada regla incumplida. Nunca se mezclan con datos parcialmente válidos.
type FieldErrors map[string][]string

// MutationState resultado de una mutación de factura.
// Exclusivo: o RedirectTo (éxito, la capa HTTP lo traduce en un redirect real)
// o Errors/Message (fallo, el formulario se re-renderiza con ellos).
type MutationState struct {
	Errors     FieldErrors `json:"errors,omitempty"`
	Message    string      `json:"message,omitempty"`
	RedirectTo string      `json:"-"`
}

// Failed reporta si la mutación no llegó a redirigir.
func (s MutationState) Failed() bool { return s.RedirectTo == "" }

// InvoiceRowResponse fila del listado de facturas (join con cliente).
type InvoiceRowResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ImageURL      string `json:"image_url,omitempty"`
	Amount        int64  `json:"amount"` // centavos
	AmountText    string `json:"amount_formatted"`
	Status        string `json:"status"`
	Date          string `json:"date"` // YYYY-MM-DD
}

// InvoiceListResponse listado paginado para GET /api/invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceRowResponse `json:"invoices"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
}

// InvoiceResponse factura individual para el formulario de edición.
// Amount va en unidades mayores (texto decimal) porque es lo que edita el usuario.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"` // unidades mayores, ej "15.50"
	Status     string `json:"status"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// CustomerResponse cliente para el selector del formulario.
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// CustomerSummaryResponse fila de la tabla de clientes con agregados.
type CustomerSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url,omitempty"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
