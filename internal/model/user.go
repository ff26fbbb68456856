package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser         Role = "USER"
	RoleAdmin        Role = "ADMIN"
	RoleProfessional Role = "PROFESSIONAL"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleProfessional
}

// CanReadAllResults reports whether the role may open results it does not own.
func (r Role) CanReadAllResults() bool {
	return r == RoleAdmin || r == RoleProfessional
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	Name         string         `json:"name"`
	PasswordHash *string        `json:"-"`
	Role         Role           `json:"role" gorm:"type:varchar(16);not null;default:'USER'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
