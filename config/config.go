package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Redis      Redis
	Auth       Auth
	Exam       Exam
	Broadsheet Broadsheet
	Log        Log
}

type Server struct {
	Port             string
	CORSAllowOrigins []string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Redis struct {
	Addr         string
	Password     string
	DB           int
	ClearanceTTL time.Duration
}

type Auth struct {
	JWTSecret string
	JWTIssuer string
}

var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET is not set")

// Validate reports settings the API cannot run without. An empty signing key
// would let any caller mint a valid token.
func (a Auth) Validate() error {
	if strings.TrimSpace(a.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

type Exam struct {
	SEBToken    string
	GracePeriod time.Duration
}

type Broadsheet struct {
	WriteConcurrency int
}

type Log struct {
	Level  string
	Pretty bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_NAME", "cbt")
	v.SetDefault("DATABASE_SQLITE_PATH", "cbt.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CLEARANCE_CACHE_TTL", "5m")
	v.SetDefault("EXAM_SEB_TOKEN", "SEB")
	v.SetDefault("EXAM_GRACE_PERIOD", "2m")
	v.SetDefault("BROADSHEET_WRITE_CONCURRENCY", 8)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

// NewConfig loads configuration from a .env file in the working directory and the environment.
func NewConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads configuration through v. Flags bound to v by the caller take precedence.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	if v.ConfigFileUsed() == "" {
		v.SetConfigName(".env")
		v.SetConfigType("env")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Msg("Error reading config file")
		}
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.CORSAllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SQLitePath = v.GetString("DATABASE_SQLITE_PATH")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")
	config.Redis.ClearanceTTL = v.GetDuration("CLEARANCE_CACHE_TTL")

	config.Auth.JWTSecret = v.GetString("AUTH_JWT_SECRET")
	config.Auth.JWTIssuer = v.GetString("AUTH_JWT_ISSUER")

	config.Exam.SEBToken = v.GetString("EXAM_SEB_TOKEN")
	config.Exam.GracePeriod = v.GetDuration("EXAM_GRACE_PERIOD")

	config.Broadsheet.WriteConcurrency = v.GetInt("BROADSHEET_WRITE_CONCURRENCY")

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Bool("redis", config.Redis.Addr != "").
		Dur("gracePeriod", config.Exam.GracePeriod).
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
