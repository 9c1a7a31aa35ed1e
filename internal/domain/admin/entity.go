package admin

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	lastLoginAt  *time.Time
	createdAt    time.Time
}

func NewAdmin(name string, email Email, passwordHash string) *Admin {
	return &Admin{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func (a *Admin) ID() uuid.UUID           { return a.id }
func (a *Admin) Name() string            { return a.name }
func (a *Admin) Email() Email            { return a.email }
func (a *Admin) PasswordHash() string    { return a.passwordHash }
func (a *Admin) LastLoginAt() *time.Time { return a.lastLoginAt }
func (a *Admin) CreatedAt() time.Time    { return a.createdAt }
