// seed crea el esquema del dashboard (users, customers, invoices, revenue) y
// lo puebla con los datos de demostración.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de DB que la API (DATABASE_URL o DB_HOST etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/facturas-api/internal/infrastructure/postgres"
	"github.com/invorya/facturas-api/pkg/config"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_id UUID NOT NULL REFERENCES customers(id),
		amount INT NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`,
}

type seedCustomer struct {
	id, name, email string
}

type seedInvoice struct {
	customerIdx int
	cents       int64
	status      string
	date        string
}

var customers = []seedCustomer{
	{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "Evil Rabbit", "evil@rabbit.com"},
	{"3958dc9e-712f-4377-85e9-fec4b6a6442a", "Delba de Oliveira", "delba@oliveira.com"},
	{"3958dc9e-742f-4377-85e9-fec4b6a6442a", "Lee Robinson", "lee@robinson.com"},
	{"76d65c26-f784-44a2-ac19-586678f7c2f2", "Michael Novotny", "michael@novotny.com"},
	{"cc27c14a-0acf-4f4a-a6c9-d45682c144b9", "Amy Burns", "amy@burns.com"},
	{"13d07535-c59e-4157-a011-f8d2ef4e0cbb", "Balazs Orban", "balazs@orban.com"},
}

var invoices = []seedInvoice{
	{0, 15795, "pending", "2022-12-06"},
	{1, 20348, "pending", "2022-11-14"},
	{4, 3040, "paid", "2022-10-29"},
	{3, 44800, "paid", "2023-09-10"},
	{5, 34577, "pending", "2023-08-05"},
	{2, 54246, "pending", "2023-07-16"},
	{0, 666, "pending", "2023-06-27"},
	{3, 32545, "paid", "2023-06-09"},
	{4, 1250, "paid", "2023-06-17"},
	{5, 8546, "paid", "2023-06-07"},
	{1, 500, "paid", "2023-08-19"},
	{5, 8945, "paid", "2023-06-03"},
	{2, 1000, "paid", "2022-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fail("crear esquema: %v", err)
		}
	}

	// Usuario demo (password hasheado con bcrypt, como en el registro real)
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "Usuario Demo", "user@nextmail.com", string(hash),
	); err != nil {
		fail("insertar usuario: %v", err)
	}

	for _, c := range customers {
		if _, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.id, c.name, c.email, "/customers/"+slug(c.name)+".png",
		); err != nil {
			fail("insertar cliente %s: %v", c.name, err)
		}
	}

	for _, inv := range invoices {
		if _, err := pool.Exec(ctx, `
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)`,
			customers[inv.customerIdx].id, inv.cents, inv.status, inv.date,
		); err != nil {
			fail("insertar factura: %v", err)
		}
	}

	for month, amount := range revenue {
		if _, err := pool.Exec(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING`,
			month, amount,
		); err != nil {
			fail("insertar revenue %s: %v", month, err)
		}
	}

	fmt.Println("seed completado")
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		}
	}
	return string(out)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
