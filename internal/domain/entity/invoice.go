package entity

import "time"

// InvoiceStatus estado de pago de la factura. Enumeración cerrada de dos valores;
// no hay orden de transición (paid puede volver a pending).
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending" // emitida, pago pendiente
	StatusPaid    InvoiceStatus = "paid"    // pagada
)

// Valid reporta si s es uno de los dos estados permitidos.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice representa una factura persistida.
// Amount se guarda como entero de centavos (unidades menores); la conversión
// desde unidades mayores ocurre en el flujo de mutación, nunca aquí.
// ID lo asigna la base de datos al insertar; Date se fija en la creación y es
// inmutable en actualizaciones.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     InvoiceStatus
	Date       time.Time
}

// InvoiceWithCustomer fila del listado: factura unida con los datos de
// presentación del cliente.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	CustomerImage string
}
