package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// blank out anything the surrounding shell may carry; getEnv treats
	// empty values as unset
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_PATH",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "blog", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/test.db")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestDatabaseURLPostgres(t *testing.T) {
	cfg := &Config{
		DBDriver:   "postgres",
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "blog",
		DBPassword: "secret",
		DBName:     "blog",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=blog password=secret dbname=blog sslmode=require",
		cfg.DatabaseURL())
}

func TestDatabaseURLSqlite(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DBPath: "blog.db"}

	assert.Equal(t, "blog.db", cfg.DatabaseURL())
}
