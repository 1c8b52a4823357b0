package api

import (
	"strings"

	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/models"
	"github.com/color-palette/api/palette"
	"github.com/color-palette/api/ratelimit"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseHost      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AllowedOrigins    []string
	AdminEmails       []string
	DevMode           bool
	RateLimitRPS      float64
	RateLimitBurst    int
	LogLevel          string
	LogFormat         string
}

// IsAdminEmail reports whether signups with email get the Admin kind.
func (c Config) IsAdminEmail(email string) bool {
	for _, admin := range c.AdminEmails {
		if admin = strings.TrimSpace(admin); admin != "" && strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	Ping() error
}

// DailyColorGenerator stores today's base color if it is missing.
type DailyColorGenerator interface {
	GenerateDailyColor() (models.DailyColor, bool, error)
}

type Application struct {
	Config         Config
	DB             Pinger
	UserRepo       datastore.UserRepository
	DailyColorRepo datastore.DailyColorRepository
	DailyColors    DailyColorGenerator
	Limiter        *ratelimit.KeyedRateLimiter
	PaletteOptions palette.Options
}

var validate = NewValidator()
