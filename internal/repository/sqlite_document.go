package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/later/internal/db"
	"github.com/alexanderramin/later/internal/domain"
	"github.com/google/uuid"
)

// documentName is the row holding the lists document.
const documentName = "lists"

// SQLiteDocumentRepo implements DocumentRepo by storing the JSON document in
// one row of the documents table. Every save gets a fresh revision id.
type SQLiteDocumentRepo struct {
	db   db.DBTX
	uow  db.UnitOfWork
	path string
}

// NewSQLiteDocumentRepo creates a SQLiteDocumentRepo. Reads go through conn;
// saves run inside uow. path is only used for messages.
func NewSQLiteDocumentRepo(conn db.DBTX, uow db.UnitOfWork, path string) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn, uow: uow, path: path}
}

func (r *SQLiteDocumentRepo) Location() string { return r.path }

func (r *SQLiteDocumentRepo) Load(ctx context.Context) (domain.Lists, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, documentName).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if body == "" {
		return nil, ErrNoDocument
	}
	return decodeDocument([]byte(body))
}

func (r *SQLiteDocumentRepo) Save(ctx context.Context, lists domain.Lists) error {
	data, err := encodeDocument(lists)
	if err != nil {
		return err
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, documentName); err != nil {
			return fmt.Errorf("clearing document: %w", err)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO documents (name, revision, body, saved_at) VALUES (?, ?, ?, ?)`,
			documentName, uuid.New().String(), string(data), nowUTC(),
		)
		if err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
		return nil
	})
}

// revision returns the id of the last save, or ErrNoDocument.
func (r *SQLiteDocumentRepo) revision(ctx context.Context) (string, error) {
	var rev string
	err := r.db.QueryRowContext(ctx, `SELECT revision FROM documents WHERE name = ?`, documentName).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoDocument
	}
	if err != nil {
		return "", fmt.Errorf("reading revision: %w", err)
	}
	return rev, nil
}
