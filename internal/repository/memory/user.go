package memory

import (
	"context"
	"sync"

	"github.com/khs61254/app-caravan/internal/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

func NewUserRepo() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	if u.TelegramChatID != nil {
		chatID := *u.TelegramChatID
		clone.TelegramChatID = &chatID
	}
	return &clone
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	if _, ok := r.users[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, cloneUser(r.users[id]))
	}
	return res, nil
}
