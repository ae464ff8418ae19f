// README: Contact-query service; intake validation plus the admin inbox operations.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound   = errors.New("query not found")
	ErrValidation = errors.New("missing required field")
)

// Store is the persistence behind the inbox.
type Store interface {
	Insert(ctx context.Context, q *Query) error
	List(ctx context.Context) ([]Query, error)
	SetRead(ctx context.Context, id string, read bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Service struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Submit validates and stores a contact query.
func (s *Service) Submit(ctx context.Context, name, email, phone, message string) (*Query, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}
	q := &Query{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.store.Insert(ctx, q); err != nil {
		return nil, err
	}
	s.log.Info("contact query received", zap.String("query_id", q.ID))
	return q, nil
}

func (s *Service) List(ctx context.Context) ([]Query, error) {
	return s.store.List(ctx)
}

func (s *Service) SetRead(ctx context.Context, id string, read bool) error {
	ok, err := s.store.SetRead(ctx, id, read)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
