package domain

import "time"

// Record carries the identity fields shared by every persisted entity.
// The id is assigned once at creation and CreatedAt is immutable after that.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Record) GetID() string { return r.ID }

func (r *Record) SetID(id string) { r.ID = id }

func (r *Record) GetCreatedAt() time.Time { return r.CreatedAt }

func (r *Record) SetCreatedAt(t time.Time) { r.CreatedAt = t }

// Entity is implemented by every collection record via an embedded Record.
type Entity interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
}
