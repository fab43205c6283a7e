package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"github.com/vitaltrack/backend/internal/domain/entity"
)

// InitialProfileJSON represents the JSONB structure of the signup health snapshot.
type InitialProfileJSON struct {
	entity.InitialProfile
}

// Value implements the driver.Valuer interface.
func (p InitialProfileJSON) Value() (driver.Value, error) {
	return json.Marshal(p.InitialProfile)
}

// Scan implements the sql.Scanner interface.
func (p *InitialProfileJSON) Scan(value interface{}) error {
	return scanJSON(value, &p.InitialProfile)
}

// UserModel represents the users table in the database.
type UserModel struct {
	ID                int                `gorm:"primaryKey;autoIncrement"`
	Name              string             `gorm:"type:varchar(255);not null"`
	Email             string             `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash      string             `gorm:"type:varchar(255);not null"`
	BirthDate         time.Time          `gorm:"type:date;not null"`
	Gender            string             `gorm:"type:varchar(20);not null"`
	HeightM           float64            `gorm:"type:decimal(3,2);not null"`
	CurrentWeightKg   float64            `gorm:"type:decimal(6,2);not null"`
	HealthConditions  pq.StringArray     `gorm:"type:text[]"`
	ActivityLevel     string             `gorm:"type:varchar(20);not null"`
	InitialProfile    InitialProfileJSON `gorm:"type:jsonb"`
	ConfirmationToken string             `gorm:"type:varchar(64)"`
	EmailConfirmed    bool               `gorm:"not null;default:false"`
	TermsAcceptedAt   time.Time          `gorm:"not null"`
	CreatedAt         time.Time          `gorm:"not null"`
	UpdatedAt         time.Time          `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		BirthDate:         m.BirthDate,
		Gender:            entity.Gender(m.Gender),
		HeightM:           m.HeightM,
		CurrentWeightKg:   m.CurrentWeightKg,
		HealthConditions:  []string(m.HealthConditions),
		ActivityLevel:     entity.ActivityLevel(m.ActivityLevel),
		InitialProfile:    m.InitialProfile.InitialProfile,
		ConfirmationToken: m.ConfirmationToken,
		EmailConfirmed:    m.EmailConfirmed,
		TermsAcceptedAt:   m.TermsAcceptedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		BirthDate:         user.BirthDate,
		Gender:            string(user.Gender),
		HeightM:           user.HeightM,
		CurrentWeightKg:   user.CurrentWeightKg,
		HealthConditions:  pq.StringArray(user.HealthConditions),
		ActivityLevel:     string(user.ActivityLevel),
		InitialProfile:    InitialProfileJSON{InitialProfile: user.InitialProfile},
		ConfirmationToken: user.ConfirmationToken,
		EmailConfirmed:    user.EmailConfirmed,
		TermsAcceptedAt:   user.TermsAcceptedAt,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
