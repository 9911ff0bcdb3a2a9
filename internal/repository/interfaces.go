package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/later/internal/domain"
)

// ErrNoDocument reports that nothing has been stored yet: the file or row is
// missing or empty. Callers generate a default document.
var ErrNoDocument = errors.New("no stored document")

// DocumentRepo loads and saves the whole collection of named lists at once.
type DocumentRepo interface {
	Load(ctx context.Context) (domain.Lists, error)
	Save(ctx context.Context, lists domain.Lists) error
	// Location names where the document lives, for user-facing messages.
	Location() string
}
