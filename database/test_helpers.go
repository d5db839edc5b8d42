package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/recipebox-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// SetupTest points the package-level DB at a fresh in-memory SQLite
// database with the full schema migrated. The previous handle is restored
// when the test finishes. Each call gets its own named shared-cache
// database so parallel connections inside one test see the same data.
func SetupTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:recipebox_test_%d?mode=memory&cache=shared&_busy_timeout=10000", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// SQLite allows a single writer; serializing connections at the pool
	// keeps concurrent test goroutines from tripping over table locks.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	previous := DB
	DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		DB = previous
	})

	return db
}
