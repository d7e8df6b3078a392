package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// bootstrapSchema executa o script de setup do banco (tabelas + carga do
// catálogo). O script é idempotente, então rodar em todo startup é seguro.
func bootstrapSchema() error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DATABASE_USER", "root"),
		getEnv("DATABASE_PASSWORD", "pass"),
		getEnv("DATABASE_HOST", "localhost"),
		getEnv("DATABASE_PORT", "5432"),
		getEnv("DATABASE_NAME", "orders_db"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for setup: %w", err)
	}
	defer db.Close()

	scriptPath := getEnv("DB_SETUP_SCRIPT", "database-setup.sql")
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("setup script not found at %s: %w", scriptPath, err)
	}

	if _, err := db.Exec(string(script)); err != nil {
		return fmt.Errorf("failed to execute setup script: %w", err)
	}

	log.Println("✅ Database schema ready")
	return nil
}
