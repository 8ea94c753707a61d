package config

import (
	"time"
)

// Version defines the ARFCN Calculator version.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel    int  `mapstructure:"log_level"`
		LogJSON     bool `mapstructure:"log_json"`
		LogToSyslog bool `mapstructure:"log_to_syslog"`
	} `mapstructure:"general"`

	Display struct {
		Format    string `mapstructure:"format"`
		Precision int    `mapstructure:"precision"`
	} `mapstructure:"display"`

	API struct {
		Bind        string        `mapstructure:"bind"`
		ReadTimeout time.Duration `mapstructure:"read_timeout"`
	} `mapstructure:"api"`

	Monitoring struct {
		Bind                string `mapstructure:"bind"`
		PrometheusEndpoint  bool   `mapstructure:"prometheus_endpoint"`
		HealthcheckEndpoint bool   `mapstructure:"healthcheck_endpoint"`
	} `mapstructure:"monitoring"`
}

// C holds the global configuration.
var C Config
