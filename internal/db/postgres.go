package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the database schema on startup
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(80) UNIQUE NOT NULL,
			email VARCHAR(120) UNIQUE NOT NULL,
			password_hash VARCHAR(256) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			phone VARCHAR(20),
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_token VARCHAR(100),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	orderTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			total_amount DOUBLE PRECISION NOT NULL,
			order_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		)
	`
	if _, err := db.Exec(ctx, orderTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDER ITEMS (catalog snapshot at order time)
	// -------------------------------
	orderItemTableSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			item_id INTEGER NOT NULL,
			item_name VARCHAR(100) NOT NULL,
			item_price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			total_price DOUBLE PRECISION NOT NULL
		)
	`
	if _, err := db.Exec(ctx, orderItemTableSQL); err != nil {
		return err
	}

	historyIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_user_date
		ON orders (user_id, order_date DESC)
	`
	if _, err := db.Exec(ctx, historyIndexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
