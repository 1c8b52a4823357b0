package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/color-palette/api/models"
)

// MemoryDailyColorStore keeps daily colors in process. It backs DB_TYPE=memory.
type MemoryDailyColorStore struct {
	mu     sync.RWMutex
	nextID int
	byDate map[string]models.DailyColor
}

func NewMemoryDailyColorStore() *MemoryDailyColorStore {
	return &MemoryDailyColorStore{nextID: 1, byDate: make(map[string]models.DailyColor)}
}

func dateKey(t time.Time) string {
	return models.StartOfDay(t).Format("2006-01-02")
}

func (m *MemoryDailyColorStore) Create(dc models.DailyColor) (models.DailyColor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := dateKey(dc.Date)
	if existing, ok := m.byDate[key]; ok {
		return existing, nil
	}

	dc.Date = models.StartOfDay(dc.Date)
	dc.ID = m.nextID
	m.nextID++
	m.byDate[key] = dc
	return dc, nil
}

func (m *MemoryDailyColorStore) GetByDate(date time.Time) (models.DailyColor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dc, ok := m.byDate[dateKey(date)]
	if !ok {
		return models.DailyColor{}, NoRowsError{true, sql.ErrNoRows}
	}
	return dc, nil
}

func (m *MemoryDailyColorStore) GetToday() (models.DailyColor, error) {
	return m.GetByDate(time.Now())
}

func (m *MemoryDailyColorStore) GetAll() ([]models.DailyColor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.DailyColor, 0, len(m.byDate))
	for _, dc := range m.byDate {
		all = append(all, dc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return all, nil
}

func (m *MemoryDailyColorStore) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, dc := range m.byDate {
		if dc.ID == id {
			delete(m.byDate, key)
		}
	}
	return nil
}

// MemoryUserStore keeps users in process. It backs DB_TYPE=memory.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (m *MemoryUserStore) Create(user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return models.User{}, fmt.Errorf("failed to create user: %s already registered", user.Email)
		}
	}
	m.users[user.UserID] = user
	return user, nil
}

func (m *MemoryUserStore) Get(userID string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, NoRowsError{true, sql.ErrNoRows}
	}
	return u, nil
}

func (m *MemoryUserStore) find(match func(models.User) bool) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, NoRowsError{true, sql.ErrNoRows}
}

func (m *MemoryUserStore) GetUserByEmail(email string) (models.User, error) {
	return m.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (m *MemoryUserStore) GetUserByUsername(username string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Username == username })
}

func (m *MemoryUserStore) GetAllUsers() ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (m *MemoryUserStore) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := m.GetUserByEmail(creds.Email)
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
