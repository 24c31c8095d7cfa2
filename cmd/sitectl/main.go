package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"nihongoclass/internal/config"
	"nihongoclass/internal/content"
	"nihongoclass/internal/database"
	"nihongoclass/internal/export"
	"nihongoclass/internal/repository"
)

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	purgeCmd := flag.NewFlagSet("purge", flag.ExitOnError)
	vocabCmd := flag.NewFlagSet("vocabulary", flag.ExitOnError)

	vocabOutput := vocabCmd.String("output", "", "Output file path (default: vocabulary_YYYYMMDD.xlsx)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		db := openDatabase(cfg)
		defer db.Close()
		log.Println("Migrations completed successfully")

	case "purge":
		purgeCmd.Parse(os.Args[2:])
		db := openDatabase(cfg)
		defer db.Close()
		handlePurge(repository.NewQuizStateRepository(db))

	case "vocabulary":
		vocabCmd.Parse(os.Args[2:])
		handleVocabulary(*vocabOutput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func openDatabase(cfg *config.Config) *database.DB {
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func handlePurge(repo *repository.QuizStateRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := repo.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("Purge failed: %v", err)
	}
	log.Printf("Removed %d expired quiz sessions", removed)
}

func handleVocabulary(outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("vocabulary_%s.xlsx", time.Now().Format("20060102"))
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outputPath, err)
	}

	if err := export.WriteVocabularyXLSX(f, content.Vocabulary); err != nil {
		f.Close()
		log.Fatalf("Export failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write %s: %v", outputPath, err)
	}

	log.Printf("Exported %d words to %s", len(content.Vocabulary), outputPath)
}

func printUsage() {
	fmt.Println("Japanese class site maintenance tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sitectl migrate                 Apply SQL migrations for the quiz session store")
	fmt.Println("  sitectl purge                   Delete expired quiz sessions from the database")
	fmt.Println("  sitectl vocabulary [options]    Export the vocabulary table to an Excel file")
	fmt.Println()
	fmt.Println("Vocabulary Options:")
	fmt.Println("  -output <file>    Output file path (default: vocabulary_YYYYMMDD.xlsx)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./nihongoclass.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  MIGRATIONS_PATH  Migrations directory (default: ./migrations)")
}
