package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/facturas-api/internal/application/analytics"
	"github.com/invorya/facturas-api/internal/application/auth"
	"github.com/invorya/facturas-api/internal/application/billing"
	"github.com/invorya/facturas-api/internal/domain/entity"
	"github.com/invorya/facturas-api/internal/domain/repository"
	"github.com/invorya/facturas-api/internal/infrastructure/viewcache"
	httpiface "github.com/invorya/facturas-api/internal/interfaces/http"
	"github.com/invorya/facturas-api/pkg/jwt"
	"github.com/invorya/facturas-api/pkg/logger"
)

const testSecret = "secreto-de-test"

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para montar la app completa sin DB.
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)

type memInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	nextID   string
	inserts  int
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[string]*entity.Invoice), nextID: "inv-generated"}
}

func (m *memInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	m.inserts++
	invoice.ID = m.nextID
	clone := *invoice
	m.invoices[invoice.ID] = &clone
	return nil
}

func (m *memInvoiceRepo) Update(_ context.Context, id, customerID string, amountCents int64, status entity.InvoiceStatus) error {
	if inv, ok := m.invoices[id]; ok {
		inv.CustomerID = customerID
		inv.Amount = amountCents
		inv.Status = status
	}
	return nil
}

func (m *memInvoiceRepo) Delete(_ context.Context, id string) error {
	delete(m.invoices, id)
	return nil
}

func (m *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, nil
	}
	clone := *inv
	return &clone, nil
}

func (m *memInvoiceRepo) ListFiltered(_ context.Context, _ string, limit, offset int) ([]*entity.InvoiceWithCustomer, error) {
	var out []*entity.InvoiceWithCustomer
	for _, inv := range m.invoices {
		out = append(out, &entity.InvoiceWithCustomer{Invoice: *inv, CustomerName: "Cliente"})
	}
	if offset >= len(out) {
		return nil, nil
	}
	if end := offset + limit; end < len(out) {
		out = out[offset:end]
	} else {
		out = out[offset:]
	}
	return out, nil
}

func (m *memInvoiceRepo) CountFiltered(_ context.Context, _ string) (int, error) {
	return len(m.invoices), nil
}

func (m *memInvoiceRepo) Latest(_ context.Context, limit int) ([]*entity.InvoiceWithCustomer, error) {
	return m.ListFiltered(context.Background(), "", limit, 0)
}

func (m *memInvoiceRepo) Count(_ context.Context) (int, error) { return len(m.invoices), nil }

func (m *memInvoiceRepo) SumByStatus(_ context.Context) (int64, int64, error) {
	var paid, pending int64
	for _, inv := range m.invoices {
		if inv.Status == entity.StatusPaid {
			paid += inv.Amount
		} else {
			pending += inv.Amount
		}
	}
	return paid, pending, nil
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

type memCustomerRepo struct {
	customers []*entity.Customer
}

func (m *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return m.customers, nil
}

func (m *memCustomerRepo) ListFiltered(_ context.Context, _ string) ([]*entity.CustomerSummary, error) {
	out := make([]*entity.CustomerSummary, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, &entity.CustomerSummary{Customer: *c})
	}
	return out, nil
}

func (m *memCustomerRepo) Count(_ context.Context) (int, error) { return len(m.customers), nil }

var _ repository.UserRepository = (*memUserRepo)(nil)

type memUserRepo struct {
	users map[string]*entity.User // key: email
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: make(map[string]*entity.User)} }

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

var _ repository.RevenueRepository = (*memRevenueRepo)(nil)

type memRevenueRepo struct {
	rows []*entity.Revenue
}

func (m *memRevenueRepo) List(_ context.Context) ([]*entity.Revenue, error) { return m.rows, nil }

// stubPDFGenerator devuelve un PDF fijo sin renderizar nada.
type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, _ *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	invoices  *memInvoiceRepo
	customers *memCustomerRepo
	users     *memUserRepo
	views     *viewcache.Cache
}

// nuevaApp monta la app completa, con todas las rutas y el middleware de auth,
// sobre los dobles en memoria.
func nuevaApp(t *testing.T) *testEnv {
	t.Helper()

	invoices := newMemInvoiceRepo()
	customers := &memCustomerRepo{customers: []*entity.Customer{
		{ID: "c1", Name: "Delba de Oliveira", Email: "delba@oliveira.com"},
	}}
	users := newMemUserRepo()
	views := viewcache.New()
	log := logger.NewNop()

	mutations := billing.NewInvoiceUseCase(invoices, views, log)
	queries := billing.NewQueryUseCase(invoices, customers)
	pdfUC := billing.NewPDFUseCase(invoices, customers, stubPDFGenerator{})
	dashboardUC := analytics.NewDashboardUseCase(invoices, customers, &memRevenueRepo{})
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "facturas-api-test",
	})

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		InvoiceMutations: mutations,
		BillingQueries:   queries,
		InvoicePDF:       pdfUC,
		DashboardUC:      dashboardUC,
		AuthUC:           authUC,
		ViewCache:        views,
		JWTSecret:        testSecret,
	})

	return &testEnv{app: app, invoices: invoices, customers: customers, users: users, views: views}
}

// tokenValido genera un Bearer Token aceptado por el middleware de la app de test.
func tokenValido(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u1", "user@nextmail.com", "facturas-api-test", 60)
	require.NoError(t, err)
	return token
}

// usuarioSembrado inserta un usuario con password bcrypt para los tests de login.
func usuarioSembrado(t *testing.T, users *memUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	users.users[email] = &entity.User{
		ID: "u1", Name: "Usuario", Email: email,
		PasswordHash: string(hash), CreatedAt: time.Now(),
	}
}
