package Constants

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Names of the two persisted session entries. The web client stores the same
// pair in its local storage, so the names must not change.
const (
	TokenEntry   = "medical_auth_token"
	ProfileEntry = "user_data"
)

var (
	GatewayBase   string
	GeoServiceURL string
	ChatWebhook   string
	ExportsDir    string
	FrontendURL   string
	Port          string
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	GatewayBase = getEnv("APIGATEWAY_BASE", "https://api.bestmedical.example/v1/")
	GeoServiceURL = getEnv("GEO_SERVICE_URL", "http://ip-api.com/json/")
	ChatWebhook = getEnv("CHAT_WEBHOOK_URL", "")
	ExportsDir = getEnv("EXPORTS_DIR", "./Exports")
	FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	Port = getEnv("PORT", "3005")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
