package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env (or the file named by ENV_FILE) into the process
// environment. A missing file is not an error; sync runs under cron get
// their environment from the unit instead.
func LoadEnv() {
	if file := os.Getenv("ENV_FILE"); file != "" {
		_ = godotenv.Load(file)
	} else {
		_ = godotenv.Load()
	}
	log.Println("Environment variables loaded (if .env present)")
}
