package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invorya/facturas-api/internal/application/dto"
	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/pkg/money"
)

// Nombres de campo tal como se exponen en FieldErrors (coinciden con el formulario).
const (
	FieldCustomerID = "customer_id"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Mensajes de validación, uno por regla incumplida.
const (
	MsgSelectCustomer = "Seleccione un cliente"
	MsgAmountRange    = "Ingrese un monto mayor a $0"
	MsgSelectStatus   = "Seleccione un estado de factura"
)

// InvoiceFields resultado tipado y normalizado de validar un formulario de
// factura: cliente presente, monto ya convertido a centavos y estado dentro de
// la enumeración. Solo existe cuando TODOS los campos pasaron.
type InvoiceFields struct {
	CustomerID string
	Cents      int64
	Status     entity.InvoiceStatus
}

// InvoiceSchema reglas de forma sobre los campos mutables de una factura.
// Hay una instancia por operación: la de creación omite id y date (los asigna
// la DB y el flujo de creación), la de actualización además nunca acepta date
// porque es inmutable tras la creación.
type InvoiceSchema struct {
	op string
}

var (
	// CreateInvoiceSchema esquema del formulario de creación.
	CreateInvoiceSchema = InvoiceSchema{op: "create"}
	// UpdateInvoiceSchema esquema del formulario de edición.
	UpdateInvoiceSchema = InvoiceSchema{op: "update"}
)

// Parse valida el envío crudo y devuelve o los campos normalizados o los
// errores por campo — nunca una mezcla parcial. El monto se interpreta como
// decimal en unidades mayores (sin punto flotante) y debe ser > 0.
func (s InvoiceSchema) Parse(form dto.InvoiceForm) (InvoiceFields, dto.FieldErrors) {
	errs := dto.FieldErrors{}

	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		errs[FieldCustomerID] = append(errs[FieldCustomerID], MsgSelectCustomer)
	}

	var cents int64
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || !amount.IsPositive() {
		errs[FieldAmount] = append(errs[FieldAmount], MsgAmountRange)
	} else {
		cents = money.ToCents(amount)
	}

	status := entity.InvoiceStatus(form.Status)
	if !status.Valid() {
		errs[FieldStatus] = append(errs[FieldStatus], MsgSelectStatus)
	}

	if len(errs) > 0 {
		return InvoiceFields{}, errs
	}
	return InvoiceFields{CustomerID: customerID, Cents: cents, Status: status}, nil
}
