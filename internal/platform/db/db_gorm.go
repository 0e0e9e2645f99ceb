package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "task_backend/internal/feature/auth/domain/entity"
	tasksentity "task_backend/internal/feature/tasks/domain/entity"
)

// retryInterval is how long to wait between connection attempts while the
// database is still coming up.
const retryInterval = 3 * time.Second

// Opener opens a gorm.DB for the given DSN. Injected so retry behavior can be
// tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps calling opener until it succeeds or the timeout
// elapses. Container orchestration often starts the app before the database
// accepts connections.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)

	var lastErr error
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect timed out after %s: %w", timeout, lastErr)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to Postgres when a DSN is given, otherwise falls back to a
// local SQLite file for development. TranslateError is enabled so unique key
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(databaseURL string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{TranslateError: true}

	if databaseURL != "" {
		db, err = ConnectWithRetry(databaseURL, 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), cfg)
		})
		if err != nil {
			log.Fatalf("DB connect failed: %v", err)
		}
	} else {
		db, err = gorm.Open(sqlite.Open("./tasks.db"), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("USING_SQLITE: ./tasks.db")
	}

	if runMigrations {
		// マイグレーション（User, Task）
		if err := db.AutoMigrate(
			&authentity.User{},
			&tasksentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
