package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"SIS_APP_NAME":                os.Getenv("SIS_APP_NAME"),
		"SIS_APP_ENV":                 os.Getenv("SIS_APP_ENV"),
		"SIS_APP_PORT":                os.Getenv("SIS_APP_PORT"),
		"SIS_DATABASE_HOST":           os.Getenv("SIS_DATABASE_HOST"),
		"SIS_DATABASE_PORT":           os.Getenv("SIS_DATABASE_PORT"),
		"SIS_DATABASE_USER":           os.Getenv("SIS_DATABASE_USER"),
		"SIS_DATABASE_PASSWORD":       os.Getenv("SIS_DATABASE_PASSWORD"),
		"SIS_DATABASE_DBNAME":         os.Getenv("SIS_DATABASE_DBNAME"),
		"SIS_DATABASE_SSLMODE":        os.Getenv("SIS_DATABASE_SSLMODE"),
		"SIS_DATABASE_MAX_OPEN_CONNS": os.Getenv("SIS_DATABASE_MAX_OPEN_CONNS"),
		"SIS_DATABASE_MAX_IDLE_CONNS": os.Getenv("SIS_DATABASE_MAX_IDLE_CONNS"),
		"SIS_JWT_SECRET":              os.Getenv("SIS_JWT_SECRET"),
		"SIS_MAIL_HOST":               os.Getenv("SIS_MAIL_HOST"),
		"SIS_STORAGE_BUCKET":          os.Getenv("SIS_STORAGE_BUCKET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "sis-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "sis", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "sis-documents", cfg.Storage.Bucket)
		assert.Equal(t, 587, cfg.Mail.Port)
	})

	t.Run("loads values from environment variables with SIS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("SIS_APP_NAME", "test-app")
		os.Setenv("SIS_APP_PORT", "9000")
		os.Setenv("SIS_DATABASE_HOST", "testdb.local")
		os.Setenv("SIS_DATABASE_PORT", "5433")
		os.Setenv("SIS_DATABASE_USER", "testuser")
		os.Setenv("SIS_DATABASE_PASSWORD", "testpass")
		os.Setenv("SIS_DATABASE_DBNAME", "testdb")
		os.Setenv("SIS_MAIL_HOST", "smtp.test.local")
		os.Setenv("SIS_STORAGE_BUCKET", "test-docs")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "smtp.test.local", cfg.Mail.Host)
		assert.Equal(t, "test-docs", cfg.Storage.Bucket)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("SIS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("SIS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("SIS_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "sis",
		Password: "p@ss/word",
		DBName:   "students",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
