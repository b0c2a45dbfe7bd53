package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB         DBConfig         `mapstructure:"db"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	AppHost    string           `mapstructure:"host"`
}

type DBConfig struct {
	URL  string `mapstructure:"url"`
	Name string `mapstructure:"name"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Serwer nie może wystartować bez tych wartości.
	required := map[string]string{
		"db.url":                cfg.DB.URL,
		"db.name":               cfg.DB.Name,
		"jwt.secret":            cfg.JWT.Secret,
		"cloudinary.cloud_name": cfg.Cloudinary.CloudName,
		"cloudinary.api_key":    cfg.Cloudinary.APIKey,
		"cloudinary.api_secret": cfg.Cloudinary.APISecret,
	}
	for key, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing required config value: %s", key)
		}
	}

	return &cfg, nil
}
