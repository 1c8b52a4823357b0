package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	Member = "Member"
	Admin  = "Admin"
)

const bcryptCost = 8

type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

type UserSignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}

type User struct {
	UserID         string    `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"password_hash"`
	Kind           string    `json:"kind" db:"kind"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

func (user User) Serialize() ([]byte, error) {
	jsonUser, err := json.Marshal(user)
	if err != nil {
		return []byte{}, fmt.Errorf("error parsing json for User %v", err)
	}
	return jsonUser, nil
}

func (user User) IsAdmin() bool {
	return user.Kind == Admin
}

// NewUser hashes the signup password and assigns a fresh id.
func NewUser(signup UserSignupRequest, kind string) (User, error) {
	hashedPassword, err := GenerateHash(signup.Password)
	if err != nil {
		return User{}, err
	}

	now := time.Now()
	return User{
		UserID:         uuid.New().String(),
		Username:       signup.Username,
		Email:          signup.Email,
		HashedPassword: hashedPassword,
		Kind:           kind,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func GenerateHash(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password %v", err)
	}
	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches the stored hash.
func (user User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) == nil
}
