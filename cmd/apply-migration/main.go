package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"mavita-score/internal/common/config"
	"mavita-score/migrations"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

const usage = `Usage: %s <up|down|status> [steps]
  up      apply all pending migrations (or at most [steps])
  down    roll back the last migration (or [steps] migrations)
  status  list migrations and whether they are applied
Connection settings come from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE.
`

func main() {
	if len(os.Args) < 2 {
		log.Fatalf(usage, os.Args[0])
	}
	steps := 0
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 {
			log.Fatalf("invalid steps %q", os.Args[2])
		}
		steps = n
	}

	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Name:     "mavita",
		SSLMode:  "disable",
	}
	cfg.LoadFromEnv("DB")

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.Name, err)
	}
	fmt.Printf("Connected to database: %s\n\n", cfg.Name)

	source := migrations.Source()
	switch os.Args[1] {
	case "up":
		n, err := migrate.ExecMax(db, "postgres", source, migrate.Up, steps)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Printf("Applied %d migration(s)\n", n)
	case "down":
		if steps == 0 {
			steps = 1
		}
		n, err := migrate.ExecMax(db, "postgres", source, migrate.Down, steps)
		if err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		fmt.Printf("Rolled back %d migration(s)\n", n)
	case "status":
		if err := printStatus(db, source); err != nil {
			log.Fatalf("Status failed: %v", err)
		}
	default:
		log.Fatalf(usage, os.Args[0])
	}
}

func printStatus(db *sql.DB, source migrate.MigrationSource) error {
	all, err := source.FindMigrations()
	if err != nil {
		return err
	}
	records, err := migrate.GetMigrationRecords(db, "postgres")
	if err != nil {
		return err
	}
	applied := make(map[string]string, len(records))
	for _, r := range records {
		applied[r.Id] = r.AppliedAt.Format("2006-01-02 15:04:05")
	}
	for _, m := range all {
		if at, ok := applied[m.Id]; ok {
			fmt.Printf("✅ %-40s applied %s\n", m.Id, at)
		} else {
			fmt.Printf("⏳ %-40s pending\n", m.Id)
		}
	}
	return nil
}
