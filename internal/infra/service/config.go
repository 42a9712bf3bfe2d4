package service

import (
	"errors"
	"fmt"
	"time"
)

// Storage backends.
const (
	StorageFile     = "file"
	StorageDocument = "document"
	StorageMemory   = "memory"
)

// Config defines application settings.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"5000"`

	Storage       string `envconfig:"STORAGE" default:"file"`
	TasksFile     string `envconfig:"TASKS_FILE" default:"tasks.json"`
	TasksFileSeed bool   `envconfig:"TASKS_FILE_SEED" default:"false"`

	DocstoreDSN           string        `envconfig:"DOCSTORE_DSN"`
	DocstoreCollection    string        `envconfig:"DOCSTORE_COLLECTION" default:"tasks"`
	DocstoreRetryInterval time.Duration `envconfig:"DOCSTORE_RETRY_INTERVAL" default:"5s"`

	AuthEnabled bool          `envconfig:"AUTH_ENABLED" default:"false"`
	JWTSecret   string        `envconfig:"JWT_SECRET"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"1h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:8080,https://todo-task-journal.vercel.app,http://localhost:3000"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Validate checks settings consistency.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageMemory:
	case StorageDocument:
		if c.DocstoreDSN == "" {
			return errors.New("DOCSTORE_DSN is required for document storage")
		}
	default:
		return fmt.Errorf("unknown storage %q, expected one of file, document, memory", c.Storage)
	}

	if c.AuthEnabled && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when AUTH_ENABLED")
	}

	return nil
}
