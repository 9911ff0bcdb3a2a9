package service

import (
	"context"

	"github.com/alexanderramin/later/internal/domain"
)

// ConfirmFunc asks whether the target may be removed.
type ConfirmFunc func(target *domain.Node) (bool, error)

// EditFunc produces the replacement title and date for current.
type EditFunc func(current *domain.Node) (domain.Info, error)

// ListService runs every use case as load, mutate, save. Item use cases
// return the list they acted on, as saved.
type ListService interface {
	Show(ctx context.Context, list string) (*domain.Node, error)
	AddItem(ctx context.Context, list string, path domain.IndexPath, info domain.Info) (*domain.Node, error)
	RemoveItem(ctx context.Context, list string, path domain.IndexPath, confirm ConfirmFunc) (*domain.Node, error)
	MoveItem(ctx context.Context, list string, from, to domain.IndexPath) (*domain.Node, error)
	EditItem(ctx context.Context, list string, path domain.IndexPath, edit EditFunc) (*domain.Node, error)
	SortList(ctx context.Context, list string) (*domain.Node, error)

	CreateList(ctx context.Context, info domain.Info) (*domain.Node, error)
	DeleteList(ctx context.Context, name string, confirm ConfirmFunc) error
	EditList(ctx context.Context, name string, edit EditFunc) (*domain.Node, error)
	// Lists returns every list except the default, ordered by name.
	Lists(ctx context.Context) ([]*domain.Node, error)
}
