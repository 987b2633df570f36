package tracelog

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadServiceConfig reads a ServiceConfig from a config file (any format
// viper recognizes from the extension) and validates it.
func LoadServiceConfig(path string) (*ServiceConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &ServiceConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config %s: %w", path, err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
