package datastore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/color-palette/api/models"
	_ "github.com/lib/pq"
)

type DailyColorRepository interface {
	Create(dailyColor models.DailyColor) (models.DailyColor, error)
	GetByDate(date time.Time) (models.DailyColor, error)
	GetToday() (models.DailyColor, error)
	GetAll() ([]models.DailyColor, error)
	Delete(id int) error
}

type DailyColorDatabase struct {
	database *sql.DB
}

func NewDailyColorDatabase(db *sql.DB) (DailyColorDatabase, error) {
	var dailyColorDB DailyColorDatabase
	dailyColorDB.database = db
	return dailyColorDB, nil
}

// Create inserts a new daily color. A second insert for the same date
// returns the row already stored.
func (dcdb DailyColorDatabase) Create(dailyColor models.DailyColor) (models.DailyColor, error) {
	db := dcdb.database

	dailyColor.Date = models.StartOfDay(dailyColor.Date)

	sqlStatement := `
		INSERT INTO daily_color (date, r, g, b, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO NOTHING
		RETURNING id`

	err := db.QueryRow(
		sqlStatement,
		dailyColor.Date,
		dailyColor.R,
		dailyColor.G,
		dailyColor.B,
		dailyColor.CreatedAt,
	).Scan(&dailyColor.ID)

	if err == sql.ErrNoRows {
		return dcdb.GetByDate(dailyColor.Date)
	}
	if err != nil {
		return models.DailyColor{}, fmt.Errorf("failed to create daily color: %w", err)
	}

	return dailyColor, nil
}

func scanDailyColor(row rowScanner) (models.DailyColor, error) {
	var dc models.DailyColor
	err := row.Scan(
		&dc.ID,
		&dc.Date,
		&dc.R,
		&dc.G,
		&dc.B,
		&dc.CreatedAt,
	)
	return dc, err
}

// GetByDate retrieves a daily color by date
func (dcdb DailyColorDatabase) GetByDate(date time.Time) (models.DailyColor, error) {
	sqlStatement := `
		SELECT id, date, r, g, b, created_at
		FROM daily_color
		WHERE date = $1`

	row := dcdb.database.QueryRow(sqlStatement, models.StartOfDay(date))
	value, err := scanDailyColor(row)
	return scanResult(value, err)
}

// GetToday retrieves today's daily color
func (dcdb DailyColorDatabase) GetToday() (models.DailyColor, error) {
	return dcdb.GetByDate(time.Now())
}

// GetAll retrieves all daily colors, newest first
func (dcdb DailyColorDatabase) GetAll() ([]models.DailyColor, error) {
	sqlStatement := `
		SELECT id, date, r, g, b, created_at
		FROM daily_color
		ORDER BY date DESC`

	rows, err := dcdb.database.Query(sqlStatement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dailyColors []models.DailyColor
	for rows.Next() {
		dc, err := scanDailyColor(rows)
		if err != nil {
			return nil, err
		}
		dailyColors = append(dailyColors, dc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dailyColors, nil
}

// Delete removes a daily color by ID
func (dcdb DailyColorDatabase) Delete(id int) error {
	_, err := dcdb.database.Exec(`DELETE FROM daily_color WHERE id = $1`, id)
	return err
}
