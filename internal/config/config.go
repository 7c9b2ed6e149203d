package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every credential and endpoint the app talks to. All of it
// comes from the environment; missing required variables fail startup.
type Config struct {
	Port        string
	AppBaseURL  string
	PostgresURL string
	JWTSecret   string

	AIProvider   string // "gemini" or "openai"
	GeminiAPIKey string
	OpenAIAPIKey string
	AIModel      string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPUseSSL   bool

	ConstituteBaseURL string
}

func Load() (*Config, error) {
	// .env is a local convenience, the environment always wins
	_ = godotenv.Load()

	var missing []string
	required := func(key string) string {
		val := os.Getenv(key)
		if val == "" {
			missing = append(missing, key)
		}
		return val
	}

	cfg := &Config{
		Port:        required("PORT"),
		AppBaseURL:  required("APP_BASE_URL"),
		PostgresURL: required("POSTGRES_URL"),
		JWTSecret:   required("JWT_SECRET"),

		AIProvider: strings.ToLower(required("AI_PROVIDER")),
		AIModel:    os.Getenv("AI_MODEL"),

		GoogleClientID:     required("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: required("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  required("GOOGLE_REDIRECT_URL"),

		TwilioAccountSID:   required("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    required("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: required("TWILIO_WHATSAPP_FROM"),

		SMTPHost:     required("SMTP_HOST"),
		SMTPUsername: required("SMTP_USERNAME"),
		SMTPPassword: required("SMTP_PASSWORD"),
		SMTPFrom:     required("SMTP_FROM"),
		SMTPFromName: os.Getenv("SMTP_FROM_NAME"),

		ConstituteBaseURL: required("CONSTITUTE_API_URL"),
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	switch cfg.AIProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		missing = append(missing, "SMTP_PORT")
	}
	cfg.SMTPPort = port
	cfg.SMTPUseSSL = os.Getenv("SMTP_USE_SSL") == "true"

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if cfg.AIProvider != "gemini" && cfg.AIProvider != "openai" {
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %q", cfg.AIProvider)
	}

	return cfg, nil
}
