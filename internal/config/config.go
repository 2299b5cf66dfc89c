package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	ShopID  string // shop the gateway process serves
}

func Load() Config {
	// .env is optional; real env vars take precedence
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shopconnect.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE") // empty means stdout only
	shopID := os.Getenv("SHOP_ID")
	if shopID == "" {
		shopID = "oxbaseshop" // single-shop installs
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, ShopID: shopID}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SHOP_ID=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.ShopID)
	return cfg
}
