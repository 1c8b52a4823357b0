package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-palette/api/api"
	"github.com/color-palette/api/datastore"
	"github.com/color-palette/api/migrations"
	"github.com/color-palette/api/palette"
	"github.com/color-palette/api/ratelimit"
	"github.com/color-palette/api/scheduler"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseHost:      getEnv("DB_HOST", "localhost"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseName:      getEnv("DB_NAME", "palettes"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 86400), // 1 day
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		AdminEmails:       getEnvSlice("ADMIN_EMAILS", ""),
		DevMode:           getEnvBool("DEV_MODE", true),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}

	setupLogging(config)

	app := &api.Application{
		Config:         config,
		PaletteOptions: palette.DefaultOptions(),
	}

	if config.DatabaseType == "memory" {
		log.Warn("DB_TYPE=memory: users and daily colors will not survive a restart")
		app.UserRepo = datastore.NewMemoryUserStore()
		app.DailyColorRepo = datastore.NewMemoryDailyColorStore()
	} else {
		connStr := datastore.BuildDBConnStr(
			config.DatabaseHost,
			config.DatabasePassword,
			config.DatabaseUser,
			config.DatabaseName,
			config.SSLMode,
		)

		dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to database")
		}
		defer dbConn.Close()

		if err := migrations.RunMigrations(dbConn); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}

		userRepo, err := datastore.NewUserDatabase(dbConn)
		if err != nil {
			log.WithError(err).Fatal("Failed to create user repository")
		}

		dailyColorRepo, err := datastore.NewDailyColorDatabase(dbConn)
		if err != nil {
			log.WithError(err).Fatal("Failed to create daily color repository")
		}

		app.DB = dbConn
		app.UserRepo = userRepo
		app.DailyColorRepo = dailyColorRepo
	}

	if config.RateLimitRPS > 0 {
		app.Limiter = ratelimit.New(config.RateLimitRPS, config.RateLimitBurst, 10*time.Minute)
	}

	colorScheduler := scheduler.NewScheduler(app.DailyColorRepo)
	colorScheduler.Start()
	defer colorScheduler.Stop()
	app.DailyColors = colorScheduler

	mux := http.NewServeMux()

	log.Info("Color Palette API starting")
	if err := app.Serve(mux); err != nil {
		log.WithError(err).Fatal("Server error")
	}
}

func setupLogging(config api.Config) {
	if strings.EqualFold(config.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
