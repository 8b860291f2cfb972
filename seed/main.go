// seed/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avanee-labs/guarani_api/seed/seeders"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, glossary, lessons")
		dsn      = flag.String("dsn", "", "Database DSN (overrides DATABASE_URL env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databaseDSN := *dsn
	if databaseDSN == "" {
		databaseDSN = os.Getenv("DATABASE_URL")
		if databaseDSN == "" {
			databaseDSN = defaultDSN()
		}
	}

	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database")

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "glossary":
		log.Println("Seeding glossary only...")
		if err := mainSeeder.SeedGlossaryOnly(); err != nil {
			log.Fatalf("Failed to seed glossary: %v", err)
		}
	case "lessons":
		log.Println("Seeding lessons only...")
		if err := mainSeeder.SeedLessonsOnly(); err != nil {
			log.Fatalf("Failed to seed lessons: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'glossary', or 'lessons'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func defaultDSN() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "guarani_api")
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", host, user, password, dbname, port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Guarani Learning API

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, glossary, lessons
  -dsn string
        Database DSN (overrides DATABASE_URL environment variable)
  -help
        Show this help message

Examples:
  # Seed everything
  go run seed/main.go

  # Seed only the glossary
  go run seed/main.go -type=glossary

Environment Variables:
  DATABASE_URL - Full postgres DSN
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME - Individual settings
`)
}
