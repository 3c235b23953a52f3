package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// User represents a login account in the system
type User struct {
	BaseModel
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Role     Role   `gorm:"size:20;default:'patient'" json:"role"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// EnsureAdminUser creates the admin login on first start if it does not
// exist yet. Doctors and patients register through the API; the admin
// account has no registration endpoint.
func EnsureAdminUser(db *gorm.DB, username, password string) error {
	var count int64
	if err := db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := User{Username: username, Role: RoleAdmin}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	return db.Create(&admin).Error
}
