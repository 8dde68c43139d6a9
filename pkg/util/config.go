package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("MAP_FILE", "./data/maps/ucsd.map")
	viper.SetDefault("SEARCH_RADIUS", 0.5)
	viper.SetDefault("LEAF_BOUNDING_BOX_RADIUS", 0.05)
	viper.SetDefault("ROUTE_CACHE_SIZE", 1024)
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("RATE_LIMIT_TRUST_PROXY", false)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", 10*time.Second)
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", 10*time.Second)
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", 120*time.Second)
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", 5*time.Second)
	viper.SetDefault("GRADER_CASE_TIMEOUT", 10*time.Second)
	viper.SetDefault("GRADER_WORKERS", 4)
}

// ReadConfig loads ./data/config.yaml on top of the defaults. A missing file is not an error.
func ReadConfig() error {
	setConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
