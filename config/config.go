package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file. Saat file tidak ada (mis. di container),
// environment sistem dipakai apa adanya.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env tidak ditemukan, pakai environment sistem")
	}
}

// Get returns the env value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
