package scheduler

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	datastore.DailyColorRepository
}

func (failingRepo) GetByDate(time.Time) (models.DailyColor, error) {
	return models.DailyColor{}, errors.New("no rows")
}

func (failingRepo) Create(models.DailyColor) (models.DailyColor, error) {
	return models.DailyColor{}, errors.New("database is down")
}

func newTestScheduler(repo datastore.DailyColorRepository, now time.Time) *Scheduler {
	s := NewScheduler(repo)
	s.Now = func() time.Time { return now }
	s.Rand = rand.New(rand.NewSource(7))
	return s
}

func TestGenerateDailyColor_OncePerDay(t *testing.T) {
	repo := datastore.NewMemoryDailyColorStore()
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(repo, now)

	first, created, err := s.GenerateDailyColor()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.StartOfDay(now), first.Date)

	second, created, err := s.GenerateDailyColor()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGenerateDailyColor_SeededRandomIsReproducible(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	a, _, err := newTestScheduler(datastore.NewMemoryDailyColorStore(), now).GenerateDailyColor()
	require.NoError(t, err)
	b, _, err := newTestScheduler(datastore.NewMemoryDailyColorStore(), now).GenerateDailyColor()
	require.NoError(t, err)

	assert.Equal(t, a.Color(), b.Color())
}

func TestGenerateDailyColor_RepoError(t *testing.T) {
	s := newTestScheduler(failingRepo{}, time.Now())

	_, created, err := s.GenerateDailyColor()
	assert.Error(t, err)
	assert.False(t, created)
}

func TestDurationUntilMidnight(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 30*time.Minute, durationUntilMidnight(now))
}

func TestStartStop(t *testing.T) {
	repo := datastore.NewMemoryDailyColorStore()
	s := newTestScheduler(repo, time.Now())

	s.Start()
	_, err := repo.GetToday()
	assert.NoError(t, err, "start generates today's color right away")

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}
