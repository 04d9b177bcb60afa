package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Logging  LoggingConfig
}

// ServerConfig 服务配置
type ServerConfig struct {
	Addr string
	Env  string
}

// DatabaseConfig 数据库配置，Driver 为 mysql 或 sqlite3
type DatabaseConfig struct {
	Driver   string
	User     string
	Password string
	Host     string
	Name     string
	Path     string
}

// AuthConfig JWT 配置
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level string
}

// 默认值
const (
	defaultAddr      = ":8080"
	defaultDBUser    = "root"
	defaultDBPass    = "root"
	defaultDBHost    = "127.0.0.1:3306"
	defaultDBName    = "mtb"
	defaultDBPath    = "soil_analysis.db"
	defaultJWTSecret = "soilhealth_secret_key"
	defaultTokenTTL  = 7 * 24 * time.Hour
)

// Load 读取 .env（可选）和环境变量
func Load(envFiles ...string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", defaultAddr),
			Env:  getEnv("APP_ENV", "production"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			User:     getEnv("DB_USER", defaultDBUser),
			Password: getEnv("DB_PASSWORD", defaultDBPass),
			Host:     getEnv("DB_HOST", defaultDBHost),
			Name:     getEnv("DB_NAME", defaultDBName),
			Path:     getEnv("DB_PATH", defaultDBPath),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
			TokenTTL:  defaultTokenTTL,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
		}
		cfg.Auth.TokenTTL = d
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// IsDevelopment 是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// DSN 返回对应驱动的连接串
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4", c.User, c.Password, c.Host, c.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
