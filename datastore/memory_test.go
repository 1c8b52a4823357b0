package datastore

import (
	"testing"
	"time"

	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDailyColorStore(t *testing.T) {
	store := NewMemoryDailyColorStore()
	day := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)

	created, err := store.Create(models.NewDailyColor(day, palette.MustParseHex("#3498db")))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StartOfDay(day), created.Date)

	again, err := store.Create(models.NewDailyColor(day, palette.MustParseHex("#000000")))
	require.NoError(t, err)
	assert.Equal(t, created, again, "one color per day")

	got, err := store.GetByDate(day.Add(3 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "#3498db", got.Color().Hex())

	_, err = store.GetByDate(day.AddDate(0, 0, 1))
	var noRows NoRowsError
	assert.ErrorAs(t, err, &noRows)

	_, err = store.Create(models.NewDailyColor(day.AddDate(0, 0, 1), palette.MustParseHex("#ffffff")))
	require.NoError(t, err)
	all, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Date.After(all[1].Date))

	require.NoError(t, store.Delete(created.ID))
	all, err = store.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryUserStore(t *testing.T) {
	store := NewMemoryUserStore()
	user, err := models.NewUser(models.UserSignupRequest{
		Username: "tint",
		Email:    "Tint@example.com",
		Password: "long enough",
	}, models.Member)
	require.NoError(t, err)

	_, err = store.Create(user)
	require.NoError(t, err)

	_, err = store.Create(user)
	assert.Error(t, err)

	byEmail, err := store.GetUserByEmail("tint@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)

	_, err = store.ValidateAndGetUser(models.Credentials{Email: "tint@example.com", Password: "long enough"})
	assert.NoError(t, err)

	_, err = store.ValidateAndGetUser(models.Credentials{Email: "tint@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, err = store.ValidateAndGetUser(models.Credentials{Email: "ghost@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
}
