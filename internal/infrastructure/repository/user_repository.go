package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
	"github.com/adiwira/kasirpos/internal/domain/repository"
)

type userRepository struct {
	store DocStore
}

// NewUserRepository creates a user repository over the KV store
func NewUserRepository(store DocStore) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Load(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	ok, err := r.store.Get(ctx, KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, users []entity.User) error {
	if users == nil {
		users = []entity.User{}
	}
	return r.store.Put(ctx, KeyUsers, users)
}

type sessionRepository struct {
	store DocStore
}

// NewSessionRepository creates a session repository over the KV store
func NewSessionRepository(store DocStore) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var session entity.Session
	ok, err := r.store.Get(ctx, KeySession, &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return r.store.Put(ctx, KeySession, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeySession)
}
