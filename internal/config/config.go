// Package config предоставляет структуры и функции для парсинга и загрузки конфига.
// Конфиг читается из yaml-файла по пути CONFIG_PATH, либо, если путь не задан,
// целиком из переменных окружения (так сервис разворачивается на Render/Heroku).
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	CRM        `yaml:"crm"`
	SMTP       `yaml:"smtp"`
	Funnel     `yaml:"funnel"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// CRM структура для настройки клиента контакт-директории (GoHighLevel API).
type CRM struct {
	APIURL     string        `yaml:"api_url" env:"GHL_API_URL" env-default:"https://rest.gohighlevel.com/v1"`
	APIKey     string        `yaml:"api_key" env:"GHL_API_KEY"`
	LocationID string        `yaml:"location_id" env:"GHL_LOCATION_ID"`
	Timeout    time.Duration `yaml:"timeout" env:"GHL_TIMEOUT" env-default:"10s"`
}

// SMTP структура для настройки почтового транспорта.
type SMTP struct {
	SMTPHost string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	SMTPPort string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	SMTPUser string `yaml:"user" env:"SMTP_USER"`
	SMTPPass string `yaml:"password" env:"SMTP_PASSWORD"`
}

// Funnel структура с настройками воронки: адрес администратора,
// платёжные ссылки и ограничение частоты запросов к вебхуку.
type Funnel struct {
	AdminEmail      string  `yaml:"admin_email" env:"ADMIN_EMAIL"`
	Stripe7DayLink  string  `yaml:"stripe_7day_link" env:"STRIPE_7DAY_LINK" env-default:"https://buy.stripe.com/5kQ7sMddybXy8dsfUR7Vm0a"`
	Stripe14DayLink string  `yaml:"stripe_14day_link" env:"STRIPE_14DAY_LINK" env-default:"https://buy.stripe.com/14A28s7Te3r251gcIF7Vm0b"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS" env-default:"1"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"3"`
}

// MustLoad загружает конфиг и валидирует обязательные поля.
// Любая ошибка на этом этапе фатальна: сервис не должен стартовать
// с неполными реквизитами CRM или SMTP.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

// Validate проверяет обязательные реквизиты внешних сервисов.
func (c *Config) Validate() error {
	switch {
	case c.CRM.APIKey == "":
		return fmt.Errorf("crm api key is required (GHL_API_KEY)")
	case c.CRM.LocationID == "":
		return fmt.Errorf("crm location id is required (GHL_LOCATION_ID)")
	case c.SMTP.SMTPUser == "":
		return fmt.Errorf("smtp user is required (SMTP_USER)")
	case c.SMTP.SMTPPass == "":
		return fmt.Errorf("smtp password is required (SMTP_PASSWORD)")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"CRM:\n"+
			"  APIURL: %s\n"+
			"  LocationID: %s\n"+
			"  Timeout: %s\n"+
			"SMTP:\n"+
			"  Host: %s\n"+
			"  Port: %s\n"+
			"  User: %s\n"+
			"Funnel:\n"+
			"  AdminEmail: %s\n"+
			"  Stripe7DayLink: %s\n"+
			"  Stripe14DayLink: %s\n"+
			"  RateLimitRPS: %.2f\n"+
			"  RateLimitBurst: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.APIURL,
		c.LocationID,
		c.CRM.Timeout,
		c.SMTPHost,
		c.SMTPPort,
		c.SMTPUser,
		c.AdminEmail,
		c.Stripe7DayLink,
		c.Stripe14DayLink,
		c.RateLimitRPS,
		c.RateLimitBurst,
	)
}
