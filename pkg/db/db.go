package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres with a bounded retry loop so the service
// survives starting before the database container is ready.
func Open(dsn string) (*gorm.DB, error) {
	var gdb *gorm.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return gdb, nil
		}
		log.Printf("[db] not ready (attempt %d/%d): %v", i, maxRetries, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("open postgres: %w", err)
}
