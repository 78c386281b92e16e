// Package config загружает конфигурацию сервиса из JSON-файла, флагов
// командной строки и переменных окружения.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/cockroachdb/errors"
)

const (
	defaultServerAddress   = "127.0.0.1:3000"
	defaultTLSCertFile     = "server.crt"
	defaultTLSKeyFile      = "server.key"
	defaultRateBurst       = 10
	defaultShutdownTimeout = 5 * time.Second
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`   // Адрес для запуска HTTP-сервера
	EnableHTTPS     string        `env:"ENABLE_HTTPS"`     // Любое непустое значение включает HTTPS
	TLSCertFile     string        `env:"TLS_CERT_FILE"`    // Путь к сертификату
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`     // Путь к приватному ключу
	EnablePprof     bool          `env:"ENABLE_PPROF"`     // Подключить /debug/pprof
	RateLimit       float64       `env:"RATE_LIMIT"`       // Запросов в секунду, 0 - без ограничения
	RateBurst       int           `env:"RATE_BURST"`       // Размер всплеска для ограничителя
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"` // Время на корректную остановку сервера
	ConfigFile      string        `env:"CONFIG"`           // Путь к JSON-файлу конфигурации
}

// JSONConfig описывает файл конфигурации. Указатели позволяют отличить
// отсутствующее поле от нулевого значения.
type JSONConfig struct {
	ServerAddress   *string  `json:"server_address"`
	EnableHTTPS     *bool    `json:"enable_https"`
	TLSCertFile     *string  `json:"tls_cert_file"`
	TLSKeyFile      *string  `json:"tls_key_file"`
	EnablePprof     *bool    `json:"enable_pprof"`
	RateLimit       *float64 `json:"rate_limit"`
	RateBurst       *int     `json:"rate_burst"`
	ShutdownTimeout *string  `json:"shutdown_timeout"`
}

// NewConfig инициализирует конфигурацию.
// Приоритет: переменные окружения > флаги > JSON-файл > значения по умолчанию.
func NewConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		TLSCertFile:     defaultTLSCertFile,
		TLSKeyFile:      defaultTLSKeyFile,
		RateBurst:       defaultRateBurst,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	// 1. Определение флагов командной строки
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	flag.StringVar(&cfg.TLSCertFile, "cert", cfg.TLSCertFile, "Путь к TLS сертификату (env: TLS_CERT_FILE)")
	flag.StringVar(&cfg.TLSKeyFile, "key", cfg.TLSKeyFile, "Путь к TLS ключу (env: TLS_KEY_FILE)")
	flag.BoolVar(&cfg.EnablePprof, "pprof", cfg.EnablePprof, "Подключить профилировщик (env: ENABLE_PPROF)")
	flag.Float64Var(&cfg.RateLimit, "rps", cfg.RateLimit, "Ограничение запросов в секунду (env: RATE_LIMIT)")
	flag.IntVar(&cfg.RateBurst, "burst", cfg.RateBurst, "Размер всплеска запросов (env: RATE_BURST)")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown", cfg.ShutdownTimeout, "Таймаут остановки сервера (env: SHUTDOWN_TIMEOUT)")
	flag.StringVar(&cfg.ConfigFile, "c", cfg.ConfigFile, "Путь к JSON-файлу конфигурации (env: CONFIG)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. Файл конфигурации заполняет только то, что не задано флагами
	configFile := cfg.ConfigFile
	if v, ok := os.LookupEnv("CONFIG"); ok {
		configFile = v
	}
	if configFile != "" {
		jsonCfg, err := LoadJSONConfig(configFile)
		if err != nil {
			return nil, err
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := cfg.applyJSON(jsonCfg, explicit); err != nil {
			return nil, err
		}
	}

	// 4. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadJSONConfig читает конфигурацию из JSON-файла.
func LoadJSONConfig(filename string) (*JSONConfig, error) {
	if filename == "" {
		return &JSONConfig{}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", filename)
	}

	var jsonCfg JSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", filename)
	}
	return &jsonCfg, nil
}

func (c *Config) applyJSON(j *JSONConfig, explicit map[string]bool) error {
	if j.ServerAddress != nil && !explicit["a"] {
		c.ServerAddress = *j.ServerAddress
	}
	if j.EnableHTTPS != nil && *j.EnableHTTPS && !explicit["s"] {
		c.EnableHTTPS = "true"
	}
	if j.TLSCertFile != nil && !explicit["cert"] {
		c.TLSCertFile = *j.TLSCertFile
	}
	if j.TLSKeyFile != nil && !explicit["key"] {
		c.TLSKeyFile = *j.TLSKeyFile
	}
	if j.EnablePprof != nil && !explicit["pprof"] {
		c.EnablePprof = *j.EnablePprof
	}
	if j.RateLimit != nil && !explicit["rps"] {
		c.RateLimit = *j.RateLimit
	}
	if j.RateBurst != nil && !explicit["burst"] {
		c.RateBurst = *j.RateBurst
	}
	if j.ShutdownTimeout != nil && !explicit["shutdown"] {
		d, err := time.ParseDuration(*j.ShutdownTimeout)
		if err != nil {
			return errors.Wrap(err, "parsing shutdown_timeout")
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if c.RateLimit < 0 {
		return errors.Newf("rate limit must not be negative, got %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		return errors.Newf("rate burst must be positive when rate limit is set, got %d", c.RateBurst)
	}
	return nil
}

// IsHTTPSEnabled возвращает true, если включен HTTPS
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// IsRateLimitEnabled возвращает true, если задано ограничение частоты запросов
func (c *Config) IsRateLimitEnabled() bool {
	return c.RateLimit > 0
}
