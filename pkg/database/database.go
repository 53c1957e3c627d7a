package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"video-catalog/pkg/models"
)

var DB *gorm.DB

// Init opens the shared connection pool and migrates the schema. The pool
// replaces the connect-per-request pattern of the original deployment; the
// pooled checkout must be the only way handlers reach the database.
func Init(dialect, dsn string) error {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return err
	}
	if dialect == "sqlite3" {
		// In-memory sqlite gives every new connection its own database.
		db.DB().SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Video{}, &models.Session{}).Error; err != nil {
		db.Close()
		return err
	}
	// Release the previous handle so repeated Init calls do not leak
	// connections.
	if DB != nil {
		DB.Close()
	}
	DB = db
	return nil
}
