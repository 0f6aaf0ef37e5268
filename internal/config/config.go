package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Parking  ParkingConfig  `toml:"parking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	QueryTimeout    int    `toml:"query_timeout"`     // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig S3-совместимое хранилище фотографий номеров
type StorageConfig struct {
	Endpoint      string `toml:"endpoint"` // пусто - AWS по умолчанию
	Region        string `toml:"region"`
	Bucket        string `toml:"bucket"`
	Prefix        string `toml:"prefix"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	UsePathStyle  bool   `toml:"use_path_style"`
	PublicBaseURL string `toml:"public_base_url"`
	Timeout       int    `toml:"timeout"` // секунды
}

// ParkingConfig параметры парковки
type ParkingConfig struct {
	InitialSlots         int     `toml:"initial_slots"`
	Timezone             string  `toml:"timezone"`
	DefaultHourlyRate    float64 `toml:"default_hourly_rate"`
	DefaultMinimumCharge float64 `toml:"default_minimum_charge"`
	DefaultCurrency      string  `toml:"default_currency"`
	MaxDeposit           float64 `toml:"max_deposit"`
}

// Location часовой пояс, в котором интерпретируется время въезда
func (p ParkingConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(p.Timezone)
}

// PricingDefaults тариф, который сохраняется при первом запуске
func (p ParkingConfig) PricingDefaults() domain.PricingConfig {
	currency := p.DefaultCurrency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return domain.PricingConfig{
		ID:            domain.DefaultPricingID,
		HourlyRate:    decimal.NewFromFloat(p.DefaultHourlyRate),
		MinimumCharge: decimal.NewFromFloat(p.DefaultMinimumCharge),
		Currency:      currency,
		UpdatedBy:     domain.SystemActor,
	}
}

// MaxDepositAmount лимит одного пополнения
func (p ParkingConfig) MaxDepositAmount() decimal.Decimal {
	return decimal.NewFromFloat(p.MaxDeposit)
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "parking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			QueryTimeout:    5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-parking-service",
		},
		Storage: StorageConfig{
			Region:  "us-east-1",
			Bucket:  "parking-images",
			Prefix:  "license-plates",
			Timeout: 15,
		},
		Parking: ParkingConfig{
			InitialSlots:         6,
			DefaultHourlyRate:    5.0,
			DefaultMinimumCharge: 2.0,
			DefaultCurrency:      "USD",
			MaxDeposit:           1000,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию, затем применяет переменные окружения
// (в том числе из .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if c.Storage.Bucket == "" {
		return errors.New("config: storage.bucket is required")
	}
	if c.Parking.InitialSlots < 0 {
		return fmt.Errorf("config: invalid parking.initial_slots %d", c.Parking.InitialSlots)
	}
	if c.Parking.DefaultHourlyRate <= 0 || c.Parking.DefaultMinimumCharge <= 0 {
		return errors.New("config: default pricing must be positive")
	}
	if c.Parking.MaxDeposit <= 0 {
		return errors.New("config: parking.max_deposit must be positive")
	}
	if _, err := c.Parking.Location(); err != nil {
		return fmt.Errorf("config: invalid parking.timezone: %w", err)
	}
	return nil
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) error {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}

	setString(&cfg.Storage.Endpoint, "S3_ENDPOINT")
	setString(&cfg.Storage.Region, "S3_REGION")
	setString(&cfg.Storage.Bucket, "S3_BUCKET")
	setString(&cfg.Storage.AccessKey, "S3_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "S3_SECRET_KEY")
	setString(&cfg.Storage.PublicBaseURL, "S3_PUBLIC_BASE_URL")

	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setString(&cfg.Parking.Timezone, "PARKING_TIMEZONE")
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
