package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DBService represents a service that interacts with a database.
type DBService struct {
	DB *sql.DB
}

// NewDBService establishes a connection to the database using the given
// connection string. The caller owns configuration; no environment lookups
// happen here.
func NewDBService(connStr string) (*DBService, error) {
	if connStr == "" {
		return nil, fmt.Errorf("missing database connection string")
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %v", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("could not connect to the database: %v", err)
	}

	return &DBService{DB: db}, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *DBService) Health() map[string]string {
	stats := make(map[string]string)

	err := s.DB.Ping()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}

// Close closes the database connection.
func (s *DBService) Close() error {
	log.Println("Closing database connection")
	return s.DB.Close()
}
