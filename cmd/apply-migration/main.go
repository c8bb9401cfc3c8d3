package main

import (
	"fmt"
	"os"
	"strings"

	"bukutamu/common/database"
	"bukutamu/common/logger"
	"bukutamu/internal/config"

	"go.uber.org/zap"
)

const defaultMigration = "scripts/sql/001_create_guests.sql"

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, "console", "apply-migration")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	files := os.Args[1:]
	if len(files) == 0 {
		files = []string{defaultMigration}
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Cannot connect to database", zap.Error(err))
	}
	defer database.Close(db)

	log.Info("Connected to database", zap.String("database", cfg.Database.Database))

	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			log.Fatal("Failed to read migration file", zap.String("file", file), zap.Error(err))
		}

		statements := splitStatements(string(sqlContent))
		for i, stmt := range statements {
			if _, err := db.Exec(stmt); err != nil {
				log.Fatal("Failed to execute statement",
					zap.String("file", file),
					zap.Int("statement", i+1),
					zap.String("sql", stmt[:min(100, len(stmt))]),
					zap.Error(err),
				)
			}
		}
		log.Info("Migration applied", zap.String("file", file), zap.Int("statements", len(statements)))
	}
}

// splitStatements splits on semicolons and drops blank and comment-only chunks.
func splitStatements(content string) []string {
	var out []string
	for _, chunk := range strings.Split(content, ";") {
		var lines []string
		for _, line := range strings.Split(chunk, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
