package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/later/internal/domain"
	"github.com/alexanderramin/later/internal/repository"
)

type listService struct {
	repo     repository.DocumentRepo
	now      func() time.Time
	notices  io.Writer
	observer UseCaseObserver
}

// NewListService creates a ListService over repo. now supplies the clock for
// generated defaults; notices receives one-line user notices such as the
// storage-file generation message and may be nil.
func NewListService(
	repo repository.DocumentRepo,
	now func() time.Time,
	notices io.Writer,
	observers ...UseCaseObserver,
) ListService {
	if now == nil {
		now = time.Now
	}
	if notices == nil {
		notices = io.Discard
	}
	return &listService{
		repo:     repo,
		now:      now,
		notices:  notices,
		observer: useCaseObserverOrNoop(observers),
	}
}

// load reads the document, generating and saving the default list when it is
// missing.
func (s *listService) load(ctx context.Context) (domain.Lists, error) {
	lists, err := s.repo.Load(ctx)
	fresh := errors.Is(err, repository.ErrNoDocument)
	if err != nil && !fresh {
		return nil, err
	}
	if fresh {
		lists = domain.Lists{}
		fmt.Fprintf(s.notices, "Generating new storage file in %s\n", s.repo.Location())
	}
	if lists.EnsureDefault(s.now()) || fresh {
		if err := s.repo.Save(ctx, lists); err != nil {
			return nil, fmt.Errorf("saving new document: %w", err)
		}
	}
	return lists, nil
}

// withList loads the document, applies fn to the named list and saves when
// fn succeeds.
func (s *listService) withList(ctx context.Context, name string, fn func(list *domain.Node) error) (*domain.Node, error) {
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	list, err := lists.Get(name)
	if err != nil {
		return nil, err
	}
	if err := fn(list); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, lists); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return list, nil
}

func (s *listService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *listService) Show(ctx context.Context, name string) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "show", startedAt, map[string]any{"list": name}, err) }()

	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return lists.Get(name)
}

func (s *listService) AddItem(ctx context.Context, name string, path domain.IndexPath, info domain.Info) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "add-item", startedAt, map[string]any{"list": name, "path": path.String()}, err)
	}()

	if info.Title == "" {
		return nil, errors.New("title must not be empty")
	}
	return s.withList(ctx, name, func(list *domain.Node) error {
		return list.Add(domain.NewEntry(info), path)
	})
}

func (s *listService) RemoveItem(ctx context.Context, name string, path domain.IndexPath, confirm ConfirmFunc) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "remove-item", startedAt, map[string]any{"list": name, "path": path.String()}, err)
	}()

	return s.withList(ctx, name, func(list *domain.Node) error {
		target, err := list.At(path)
		if err != nil {
			return err
		}
		if confirm != nil {
			ok, err := confirm(target)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrCancelled
			}
		}
		_, err = list.Remove(path)
		return err
	})
}

func (s *listService) MoveItem(ctx context.Context, name string, from, to domain.IndexPath) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "move-item", startedAt, map[string]any{
			"list": name,
			"from": from.String(),
			"to":   to.String(),
		}, err)
	}()

	return s.withList(ctx, name, func(list *domain.Node) error {
		return list.Move(from, to)
	})
}

func (s *listService) EditItem(ctx context.Context, name string, path domain.IndexPath, edit EditFunc) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "edit-item", startedAt, map[string]any{"list": name, "path": path.String()}, err)
	}()

	return s.withList(ctx, name, func(list *domain.Node) error {
		target, err := list.At(path)
		if err != nil {
			return err
		}
		info, err := edit(target)
		if err != nil {
			return err
		}
		if info.Title == "" {
			return errors.New("title must not be empty")
		}
		target.SetInfo(info)
		return nil
	})
}

func (s *listService) SortList(ctx context.Context, name string) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "sort", startedAt, map[string]any{"list": name}, err) }()

	return s.withList(ctx, name, func(list *domain.Node) error {
		list.Sort()
		return nil
	})
}

func (s *listService) CreateList(ctx context.Context, info domain.Info) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "create-list", startedAt, map[string]any{"list": info.Title}, err) }()

	if info.Title == "" {
		return nil, errors.New("list name must not be empty")
	}
	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	list, err = lists.Create(info)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, lists); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return list, nil
}

func (s *listService) DeleteList(ctx context.Context, name string, confirm ConfirmFunc) (err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "delete-list", startedAt, map[string]any{"list": name}, err) }()

	if name == domain.DefaultList {
		return domain.ErrDefaultList
	}
	lists, err := s.load(ctx)
	if err != nil {
		return err
	}
	target, err := lists.Get(name)
	if err != nil {
		return err
	}
	if confirm != nil {
		ok, err := confirm(target)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCancelled
		}
	}
	if _, err := lists.Delete(name); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, lists); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

func (s *listService) EditList(ctx context.Context, name string, edit EditFunc) (list *domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "edit-list", startedAt, map[string]any{"list": name}, err) }()

	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	current, err := lists.Get(name)
	if err != nil {
		return nil, err
	}
	info, err := edit(current)
	if err != nil {
		return nil, err
	}
	if info.Title == "" {
		return nil, errors.New("list name must not be empty")
	}
	list, err = lists.Rename(name, info)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, lists); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return list, nil
}

func (s *listService) Lists(ctx context.Context) (named []*domain.Node, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "lists", startedAt, nil, err) }()

	lists, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return lists.Named(), nil
}
