package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	News       NewsConfig
	Translator TranslatorConfig
	Geo        GeoConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	NewsSearchTTL time.Duration
}

type LogConfig struct {
	Level string
}

// NewsConfig - external news provider credentials and defaults.
// A missing key disables the matching provider without erroring.
type NewsConfig struct {
	NewsAPIKey     string
	SerpAPIKey     string
	SerperKey      string
	RSSFeeds       []string
	DefaultQuery   string
	Language       string
	Country        string
	RequestTimeout time.Duration
}

type TranslatorConfig struct {
	Backend        string
	OllamaURL      string
	OllamaModel    string
	GeminiAPIKey   string
	GeminiModel    string
	RequestTimeout time.Duration
}

type GeoConfig struct {
	WritePrecision uint
	QueryPrecision uint
	MaxResults     int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			NewsSearchTTL: time.Duration(viper.GetInt("NEWS_SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		News: NewsConfig{
			NewsAPIKey:     viper.GetString("NEWSAPI_KEY"),
			SerpAPIKey:     viper.GetString("SERPAPI_KEY"),
			SerperKey:      viper.GetString("SERPER_KEY"),
			RSSFeeds:       parseList(viper.GetString("NEWS_RSS_FEEDS")),
			DefaultQuery:   viper.GetString("NEWS_DEFAULT_QUERY"),
			Language:       viper.GetString("NEWS_LANGUAGE"),
			Country:        viper.GetString("NEWS_COUNTRY"),
			RequestTimeout: time.Duration(viper.GetInt("NEWS_REQUEST_TIMEOUT")) * time.Second,
		},
		Translator: TranslatorConfig{
			Backend:        viper.GetString("TRANSLATOR_BACKEND"),
			OllamaURL:      viper.GetString("OLLAMA_URL"),
			OllamaModel:    viper.GetString("OLLAMA_MODEL"),
			GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
			GeminiModel:    viper.GetString("GEMINI_MODEL"),
			RequestTimeout: time.Duration(viper.GetInt("TRANSLATOR_REQUEST_TIMEOUT")) * time.Second,
		},
		Geo: GeoConfig{
			WritePrecision: viper.GetUint("GEOHASH_WRITE_PRECISION"),
			QueryPrecision: viper.GetUint("GEOHASH_QUERY_PRECISION"),
			MaxResults:     viper.GetInt("GEO_MAX_RESULTS"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.NewsSearchTTL == 0 {
		cfg.Cache.NewsSearchTTL = 300 * time.Second
	}
	if cfg.News.DefaultQuery == "" {
		cfg.News.DefaultQuery = "Cameroon"
	}
	if cfg.News.Language == "" {
		cfg.News.Language = "en"
	}
	if cfg.News.Country == "" {
		cfg.News.Country = "cm"
	}
	if cfg.News.RequestTimeout == 0 {
		cfg.News.RequestTimeout = 10 * time.Second
	}
	if cfg.Translator.Backend == "" {
		cfg.Translator.Backend = "ollama"
	}
	if cfg.Translator.OllamaURL == "" {
		cfg.Translator.OllamaURL = "http://localhost:11434/api/chat"
	}
	if cfg.Translator.OllamaModel == "" {
		cfg.Translator.OllamaModel = "qwen2:0.5b"
	}
	if cfg.Translator.GeminiModel == "" {
		cfg.Translator.GeminiModel = "gemini-1.5-flash"
	}
	if cfg.Translator.RequestTimeout == 0 {
		cfg.Translator.RequestTimeout = 30 * time.Second
	}
	if cfg.Geo.WritePrecision == 0 {
		cfg.Geo.WritePrecision = 9
	}
	if cfg.Geo.QueryPrecision == 0 {
		cfg.Geo.QueryPrecision = 7
	}
	if cfg.Geo.MaxResults == 0 {
		cfg.Geo.MaxResults = 50
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
