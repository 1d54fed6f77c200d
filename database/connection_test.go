package database_test

import (
	"testing"

	"blogapi/config"
	"blogapi/database"
	"blogapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectSqliteAndMigrate(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:connection_test?mode=memory&cache=shared",
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&models.User{Username: "alice"}).Error)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConnectTranslatesConstraintViolations(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:translate_test?mode=memory&cache=shared",
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&models.User{Username: "alice"}).Error)

	err = db.Create(&models.User{Username: "alice"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
