package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// NewViper loads config.json from the working directory or the repo root.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.AddConfigPath("./../../")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		fmt.Println("config file not found, relying on defaults and environment:", err.Error())
	}

	return config
}
