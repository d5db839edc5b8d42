package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// WaitReady blocks until the database accepts connections or the attempt
// budget runs out. The server must not start taking requests against a
// store that is still booting.
func WaitReady(dbURL string, attempts int, delay time.Duration) error {
	for i := 1; i <= attempts; i++ {
		db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				err = sqlDB.Ping()
				sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		if err == nil {
			log.Println("✅ Database is available")
			return nil
		}
		log.Printf("⏳ Database unavailable (attempt %d/%d), waiting %s...", i, attempts, delay)
		time.Sleep(delay)
	}
	return fmt.Errorf("database not ready after %d attempts", attempts)
}
