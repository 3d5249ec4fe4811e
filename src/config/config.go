package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

type ServiceConfig struct {
	Port string `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
	AWSSecretID      string `mapstructure:"aws_secret_id"`
	AWSRegion        string `mapstructure:"aws_region"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type CacheConfig struct {
	MaxEntries int `mapstructure:"maxEntries"`
	TTLSeconds int `mapstructure:"ttlSeconds"`
}

func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	if env != "" {
		viper.SetConfigName("appsettings." + env)
	} else {
		viper.SetConfigName("appsettings")
	}
	viper.SetConfigType("yaml")

	viper.SetDefault("service.port", "8000")
	viper.SetDefault("cache.maxEntries", 100)
	viper.SetDefault("cache.ttlSeconds", 300)

	// DATABASE_URL overrides the yaml connection string so the service can
	// point at a hosted backend without editing settings.
	_ = viper.BindEnv("databases.sql.connection_string", "DATABASE_URL")
	_ = viper.BindEnv("databases.redis.host", "REDIS_HOST")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
