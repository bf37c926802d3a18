package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Booking    BookingConfig
	Directory  DirectoryConfig
	Cloudinary CloudinaryConfig
	Site       SiteConfig
}

type AppConfig struct {
	Port       string
	Env        string
	Timezone   string
	LogLevel   string
	CORSOrigin string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AdminConfig holds the single back-office account. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

type BookingConfig struct {
	CurrencySymbol   string
	UnavailableSlots []string
	Mode             string // acknowledge | persist
	SessionTTL       time.Duration
}

type DirectoryConfig struct {
	SeedFile    string
	RefreshCron string
}

type CloudinaryConfig struct {
	URL    string
	Folder string
}

type SiteConfig struct {
	Name        string
	Description string
	Links       []string
	Phone       string
	Email       string
}

const (
	BookingModeAcknowledge = "acknowledge"
	BookingModePersist     = "persist"
)

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("CURRENCY_SYMBOL", "$")
	viper.SetDefault("BOOKING_UNAVAILABLE_SLOTS", "12:00 PM,03:30 PM,05:00 PM")
	viper.SetDefault("BOOKING_MODE", BookingModeAcknowledge)
	viper.SetDefault("CLOUDINARY_FOLDER", "mediconnect_doctors")
	viper.SetDefault("SITE_NAME", "MediConnect")
	viper.SetDefault("SITE_DESCRIPTION", "MediConnect connects patients with medical professionals: online consultations, appointment scheduling and access to a wide range of healthcare providers.")
	viper.SetDefault("SITE_LINKS", "Home,About us,Delivery,Privacy policy")
	viper.SetDefault("SITE_PHONE", "+1-212-456-7890")
	viper.SetDefault("SITE_EMAIL", "mediconnect@gmail.com")
}

// LoadConfig reads .env when present and lets environment variables override it.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("BOOKING_SESSION_TTL"))
	if err != nil {
		sessionTTL = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			Timezone:   viper.GetString("APP_TIMEZONE"),
			LogLevel:   viper.GetString("LOG_LEVEL"),
			CORSOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Admin: AdminConfig{
			Email:        viper.GetString("ADMIN_EMAIL"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		Booking: BookingConfig{
			CurrencySymbol:   viper.GetString("CURRENCY_SYMBOL"),
			UnavailableSlots: splitList(viper.GetString("BOOKING_UNAVAILABLE_SLOTS")),
			Mode:             strings.ToLower(viper.GetString("BOOKING_MODE")),
			SessionTTL:       sessionTTL,
		},
		Directory: DirectoryConfig{
			SeedFile:    viper.GetString("DIRECTORY_SEED_FILE"),
			RefreshCron: viper.GetString("DIRECTORY_REFRESH_CRON"),
		},
		Cloudinary: CloudinaryConfig{
			URL:    viper.GetString("CLOUDINARY_URL"),
			Folder: viper.GetString("CLOUDINARY_FOLDER"),
		},
		Site: SiteConfig{
			Name:        viper.GetString("SITE_NAME"),
			Description: viper.GetString("SITE_DESCRIPTION"),
			Links:       splitList(viper.GetString("SITE_LINKS")),
			Phone:       viper.GetString("SITE_PHONE"),
			Email:       viper.GetString("SITE_EMAIL"),
		},
	}

	return config, nil
}

// Location resolves APP_TIMEZONE; slot windows are computed in this zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
