package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string
	Shop    ServiceConfig
	Users   ServiceConfig
	Calc    ServiceConfig
	Metrics MetricsConfig
	Limits  LimitsConfig
}

type ServiceConfig struct {
	Port string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type LimitsConfig struct {
	RegisterPerMin int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("SHOP_PORT", "8081")
	viper.SetDefault("USERS_PORT", "8082")
	viper.SetDefault("CALC_PORT", "8083")
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("REGISTER_LIMIT_PER_MIN", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Env: viper.GetString("ENV"),
		Shop: ServiceConfig{
			Port: viper.GetString("SHOP_PORT"),
		},
		Users: ServiceConfig{
			Port: viper.GetString("USERS_PORT"),
		},
		Calc: ServiceConfig{
			Port: viper.GetString("CALC_PORT"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Token:   viper.GetString("METRICS_TOKEN"),
		},
		Limits: LimitsConfig{
			RegisterPerMin: viper.GetInt("REGISTER_LIMIT_PER_MIN"),
		},
	}
}
