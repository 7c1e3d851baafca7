package repository

import (
	"context"

	"github.com/adiwira/kasirpos/internal/domain/entity"
)

// UserRepository persists the operator accounts.
type UserRepository interface {
	Load(ctx context.Context) ([]entity.User, error)
	Save(ctx context.Context, users []entity.User) error
}

// SessionRepository persists the current operator session. Load returns
// (nil, nil) when no session is stored.
type SessionRepository interface {
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}
