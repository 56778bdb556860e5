// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"discprofile_backend/internals/constants"
)

/* =============================================================================
   MODEL: users
   Usuários administradores da plataforma (donos de campanha).
============================================================================= */

type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Dados
	UserName  string `json:"user_name" gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(160);not null;uniqueIndex:uq_user_email"`
	UserRole  string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'recruiter'"`

	// Hash bcrypt: nunca exposto em JSON
	UserPasswordHash string `json:"-" gorm:"column:user_password_hash;type:varchar(100);not null"`

	// Audit
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(_ *gorm.DB) error {
	if m.UserRole == "" {
		m.UserRole = constants.RoleRecruiter
	}
	if !constants.ValidRole(m.UserRole) {
		return constants.ErrUnknownRole
	}
	m.UserUpdatedAt = time.Now()
	return nil
}

func (m *UserModel) IsAdmin() bool { return m.UserRole == constants.RoleAdmin }

func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPasswordHash = string(hash)
	return nil
}

func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPasswordHash), []byte(plain)) == nil
}
