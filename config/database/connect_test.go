package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"

	"aura/config"
	"aura/pkg/log"
)

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(context.Background(), config.DatabaseConfig{
		Driver:   DriverSQLite,
		DSN:      ":memory:",
		LogLevel: "silent",
	}, log.NewNop())
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{name: "postgres", cfg: config.DatabaseConfig{Driver: "postgres", DSN: "host=localhost"}, want: "postgres"},
		{name: "mysql", cfg: config.DatabaseConfig{Driver: "MySQL", DSN: "u:p@tcp(localhost)/aura"}, want: "mysql"},
		{name: "sqlite", cfg: config.DatabaseConfig{Driver: "sqlite", DSN: "aura.db"}, want: "sqlite"},
		{name: "unknown driver", cfg: config.DatabaseConfig{Driver: "oracle", DSN: "x"}, wantErr: true},
		{name: "missing dsn", cfg: config.DatabaseConfig{Driver: "sqlite"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dialectorFor(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name())
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, logLevel("silent"))
	assert.Equal(t, gormLogger.Error, logLevel("ERROR"))
	assert.Equal(t, gormLogger.Info, logLevel("info"))
	assert.Equal(t, gormLogger.Warn, logLevel(""))
}
