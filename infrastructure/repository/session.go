package repository

import (
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/domain"
)

// SessionRepository holds the single active session record. At most one
// session exists at a time; logging in overwrites it and logging out deletes
// the key.
type SessionRepository interface {
	Get() (*domain.Session, bool)
	Save(session *domain.Session) error
	Delete() error
}

type sessionRepository struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get() (*domain.Session, bool) {
	var session domain.Session
	if !r.store.Get(kvstore.KeySession, &session) {
		return nil, false
	}
	return &session, true
}

func (r *sessionRepository) Save(session *domain.Session) error {
	return r.store.Set(kvstore.KeySession, session)
}

func (r *sessionRepository) Delete() error {
	return r.store.Delete(kvstore.KeySession)
}
