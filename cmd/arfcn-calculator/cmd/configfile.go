package cmd

import (
	"io"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mwk/arfcn-calculator/internal/config"
)

// when updating this template, don't forget to update the config section of
// the README!
const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}

# Log in JSON format.
log_json={{ .General.LogJSON }}

# Log to syslog.
#
# When set to true, log messages are being written to syslog.
log_to_syslog={{ .General.LogToSyslog }}


# Display settings.
[display]
# Output format.
#
# Valid values are:
#
# * text - Human readable result panel
# * json - JSON document
format="{{ .Display.Format }}"

# Number of decimals used for the uplink, downlink and center frequency.
precision={{ .Display.Precision }}


# ARFCN API settings.
#
# The API exposes the following endpoints:
#
# * /api/resolve?arfcn=<n> - Resolve the given ARFCN
# * /api/bands             - List the supported bands
[api]
# ip:port to bind the API server to.
#
# When left blank, the API is disabled.
bind="{{ .API.Bind }}"

# Maximum duration for reading a request.
read_timeout="{{ .API.ReadTimeout }}"


# Monitoring settings.
[monitoring]
# IP:port to bind the monitoring endpoint to.
#
# When left blank, the monitoring endpoint will be disabled.
bind="{{ .Monitoring.Bind }}"

# Prometheus metrics endpoint.
#
# When set to true, Prometheus metrics will be served at '/metrics'.
prometheus_endpoint={{ .Monitoring.PrometheusEndpoint }}

# Healthcheck endpoint.
#
# When set to true, the healthcheck endpoint will be served at '/health'.
healthcheck_endpoint={{ .Monitoring.HealthcheckEndpoint }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the ARFCN Calculator configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfigFile(cmd.OutOrStdout(), config.C)
	},
}

func writeConfigFile(w io.Writer, c config.Config) error {
	t := template.Must(template.New("config").Parse(configTemplate))
	if err := t.Execute(w, &c); err != nil {
		return errors.Wrap(err, "execute config template error")
	}
	return nil
}
