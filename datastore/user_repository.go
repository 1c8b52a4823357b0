package datastore

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/color-palette/api/models"
)

var ErrInvalidLogin = errors.New("invalid email or password")

type UserRepository interface {
	Create(user models.User) (models.User, error)
	Get(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	GetAllUsers() ([]models.User, error)
	ValidateAndGetUser(creds models.Credentials) (models.User, error)
}

type UserDatabase struct {
	database *sql.DB
}

func NewUserDatabase(db *sql.DB) (UserDatabase, error) {
	var userDB UserDatabase
	userDB.database = db
	return userDB, nil
}

const userColumns = `user_id, username, email, password_hash, kind, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Kind,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

func (pgdb UserDatabase) Create(user models.User) (models.User, error) {
	db := pgdb.database

	_, insertErr := db.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.UserID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Kind,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if insertErr != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", insertErr)
	}

	return user, nil
}

func (pgdb UserDatabase) Get(userID string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	value, err := scanUser(row)
	return scanResult(value, err)
}

func (pgdb UserDatabase) GetUserByEmail(email string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	value, err := scanUser(row)
	return scanResult(value, err)
}

func (pgdb UserDatabase) GetUserByUsername(username string) (models.User, error) {
	row := pgdb.database.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	value, err := scanUser(row)
	return scanResult(value, err)
}

func (pgdb UserDatabase) GetAllUsers() ([]models.User, error) {
	rows, err := pgdb.database.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ValidateAndGetUser looks the user up by email and checks the password.
func (pgdb UserDatabase) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := pgdb.GetUserByEmail(creds.Email)
	if err != nil {
		var noRows NoRowsError
		if errors.As(err, &noRows) {
			return models.User{}, ErrInvalidLogin
		}
		return models.User{}, err
	}

	if !user.CheckPassword(creds.Password) {
		return models.User{}, ErrInvalidLogin
	}

	return user, nil
}
