package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	RedisAddr  string
	RedisPass  string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	// Mercado Pago settings
	MPBaseURL     string
	MPAccessToken string
	// Default return URL when the client does not send one
	PaymentReturnURL string
	// Object storage settings (S3-compatible)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		Port:             getenvOrDefault("PORT", "8080"),
		RedisAddr:        getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         os.Getenv("SMTP_PORT"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		MPBaseURL:        getenvOrDefault("MP_BASE_URL", "https://api.mercadopago.com"),
		MPAccessToken:    os.Getenv("MP_ACCESS_TOKEN"),
		PaymentReturnURL: getenvOrDefault("PAYMENT_RETURN_URL", "http://localhost:3000"),
		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    getenvOrDefault("STORAGE_BUCKET", "ravello-uploads"),
		StorageUseSSL:    os.Getenv("STORAGE_USE_SSL") == "true",
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
