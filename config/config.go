package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth    Auth
	Storage Storage
}

type Auth struct {
	Secret   string
	TokenTTL time.Duration
	// Bootstrap admin credentials, inserted on startup when the admins
	// table has no row with this email.
	AdminEmail        string
	AdminPasswordHash string
}

type Storage struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string
}
