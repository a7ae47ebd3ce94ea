package repository

import (
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/domain"
)

type UserRepository interface {
	List() []*domain.User
	GetByEmail(email string) *domain.User
	GetByID(id string) *domain.User
	Create(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	coll Collection[*domain.User]
}

func NewUserRepository(store kvstore.Store) UserRepository {
	return &userRepository{
		coll: NewCollection[*domain.User](store, kvstore.KeyUsers),
	}
}

func (r *userRepository) List() []*domain.User {
	return r.coll.List()
}

// GetByEmail matches the stored email exactly, case-sensitive. Returns nil
// when no user matches.
func (r *userRepository) GetByEmail(email string) *domain.User {
	for _, user := range r.coll.List() {
		if user.Email == email {
			return user
		}
	}
	return nil
}

func (r *userRepository) GetByID(id string) *domain.User {
	user, ok := r.coll.Find(id)
	if !ok {
		return nil
	}
	return user
}

func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	return r.coll.Add(user)
}
