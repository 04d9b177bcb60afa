package config

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "APP_ENV", "DB_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_NAME", "DB_PATH", "JWT_SECRET", "JWT_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "root:root@tcp(127.0.0.1:3306)/mtb?parseTime=true&charset=utf8mb4", cfg.Database.DSN())
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "/tmp/soil.db")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "/tmp/soil.db", cfg.Database.DSN())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	_, err := Load("testdata/missing.env")
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_TTL", "soon")
	_, err = Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}

func TestMigrateSQLiteIsIdempotent(t *testing.T) {
	db, err := sql.Open(DriverSQLite, "file:migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	logger := zap.NewNop()
	require.NoError(t, Migrate(db, DriverSQLite, logger))
	require.NoError(t, Migrate(db, DriverSQLite, logger))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, len(migrations), count)

	_, err = db.Exec(`INSERT INTO soil_analyses (id, user_id, timestamp, health_score, result_json) VALUES ('a', 1, '2024-01-01 00:00:00', 5, '{}')`)
	assert.NoError(t, err)
}
