package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Read environment to determine table prefix
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev" // Default to dev
	}

	if env == "prod" {
		log.Fatal("Refusing to drop production tables")
	}
	prefix := env + "_"

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	// Drop all tables with environment-specific prefix, children first
	dropSQL := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]sactivity_log CASCADE;
		DROP TABLE IF EXISTS %[1]ssettings CASCADE;
		DROP TABLE IF EXISTS %[1]sgoals CASCADE;
		DROP TABLE IF EXISTS %[1]sleads CASCADE;
		DROP TABLE IF EXISTS %[1]saudiences CASCADE;
		DROP TABLE IF EXISTS %[1]scampaigns CASCADE;
		DROP TABLE IF EXISTS %[1]screatives CASCADE;
		DROP TABLE IF EXISTS %[1]sfolders CASCADE;
	`, prefix)

	if _, err := db.Exec(dropSQL); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Printf("All tables dropped successfully (prefix: %s)\n", prefix)
}
