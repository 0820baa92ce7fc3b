// Package repository provides methods to work with DB
package repository

import (
	"context"
	"database/sql"
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"inpaintapi/internal/model"
	"inpaintapi/internal/repository/imgsqlite"
)

type ImageRepo interface {
	Create(ctx context.Context, rec *model.ImageRecord) error
	List(ctx context.Context) ([]model.ImageRecord, error)
	AssetIDs(ctx context.Context, id int64) (original string, mask string, err error)
	Delete(ctx context.Context, id int64) error
}

func NewSQLiteImageRepo(db *sql.DB) ImageRepo {
	return imgsqlite.SQLiteRepo{DB: db}
}

// OpenSQLite opens the file-backed database, creating the file on first
// run. SQLite serializes writers itself; the busy timeout keeps
// concurrent handlers waiting instead of failing fast.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate ensures the schema exists; safe to call on every startup.
func Migrate(db *sql.DB, migrationsPath string) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}

	sourceURL := "file://" + absPath
	log.Println("Running migrations from:", sourceURL)

	m, err := migrate.NewWithDatabaseInstance(
		sourceURL,
		"sqlite",
		driver,
	)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Println("Database migrations applied successfully")
	return nil
}
