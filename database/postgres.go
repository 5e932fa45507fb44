package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres opens the connection pool configured by DATABASE_URL.
func ConnectPostgres(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	PostgresDB = db
	return nil
}
