package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"merch-store-backend/models"
)

// PostgresStore persists the document as a single jsonb row. It is the
// alternative to FileStore for deployments where local disk is not
// durable; selected with STORE_BACKEND=postgres.
type PostgresStore struct {
	db *sql.DB
}

// Ensure PostgresStore implements Store
var _ Store = (*PostgresStore)(nil)

const createDocumentTable = `
	CREATE TABLE IF NOT EXISTS store_documents (
		id         INT PRIMARY KEY,
		doc        JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// NewPostgresStore opens the database connection from environment
// variables (DATABASE_URL, or the individual DB_* variables) and ensures
// the document table exists.
func NewPostgresStore(ctx context.Context) (*PostgresStore, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		// Build connection string from individual variables
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbname := os.Getenv("DB_NAME")
		sslmode := os.Getenv("DB_SSLMODE")

		if host == "" || user == "" || dbname == "" {
			return nil, fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}

		if port == "" {
			port = "5432"
		}
		if sslmode == "" {
			sslmode = "disable"
		}

		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, createDocumentTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure store_documents table: %w", err)
	}

	log.Printf("✓ Database connection established successfully")
	return &PostgresStore{db: db}, nil
}

// Load reads the document row. A missing row yields the default empty document.
func (s *PostgresStore) Load(ctx context.Context) (*models.Document, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM store_documents WHERE id = 1`).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stored document: %w", err)
	}
	normalize(&doc)
	return &doc, nil
}

// Save upserts the document row.
func (s *PostgresStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
		INSERT INTO store_documents (id, doc, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
