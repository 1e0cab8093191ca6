package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	JWTSecret  string
	AppAuthKey string
	AppEncKey  string

	EmailHost        string
	EmailPort        int
	EmailUsername    string
	EmailPassword    string
	EmailFrom        string
	AdminNotifyEmail string

	ContentCacheDir string

	// Auth policy knobs. The storefront accepts anonymous inquiries by
	// default; admin list endpoints require a token by default.
	InquiryRequireAuth bool
	AdminPublicRead    bool
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		EmailHost:        os.Getenv("EMAIL_HOST"),
		EmailPort:        cast.ToInt(os.Getenv("EMAIL_PORT")),
		EmailUsername:    os.Getenv("EMAIL_USERNAME"),
		EmailPassword:    os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:        os.Getenv("EMAIL_USERNAME"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),

		ContentCacheDir: os.Getenv("CONTENT_CACHE_DIR"),

		InquiryRequireAuth: cast.ToBool(os.Getenv("INQUIRY_REQUIRE_AUTH")),
		AdminPublicRead:    cast.ToBool(os.Getenv("ADMIN_PUBLIC_READ")),
	}

}

var LoadENV = LoadEnv()
