// Package config reads runtime settings from the environment, after loading
// an optional .env file.
//
// Variables:
//
//	LOG_LEVEL           zerolog level (default info)
//	PORT                practice host port (default 5175)
//	WORDS_ANSWERS_FILE  answer list path (optional)
//	WORDS_ALLOWED_FILE  allowed guess list path (optional)
//	DAILY_SALT          salt for the daily answer (default local_dev_salt)
//	SOLVER_TIMEOUT      bound on each host wait (default 10s)
//	SOLVER_SEED         guess sampling seed; 0 means random (default 0)
//	HOST_URL            practice host base URL (default http://localhost:5175)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds every setting the commands read.
type Config struct {
	LogLevel    zerolog.Level
	Port        string
	AnswersFile string
	AllowedFile string
	DailySalt   string
	Timeout     time.Duration
	Seed        uint64
	HostURL     string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return Config{
		LogLevel:    lvl,
		Port:        getEnv("PORT", "5175"),
		AnswersFile: os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile: os.Getenv("WORDS_ALLOWED_FILE"),
		DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
		Timeout:     getDuration("SOLVER_TIMEOUT", 10*time.Second),
		Seed:        getUint("SOLVER_SEED", 0),
		HostURL:     getEnv("HOST_URL", "http://localhost:5175"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(k)); err == nil && d > 0 {
		return d
	}
	return def
}

func getUint(k string, def uint64) uint64 {
	if n, err := strconv.ParseUint(os.Getenv(k), 10, 64); err == nil {
		return n
	}
	return def
}
