package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the dashboard configuration file location
type Dashboard struct {
	ConfigPath string
}

// Flags returns CLI flags for Dashboard configuration
func (d *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the dashboard YAML configuration (title and column names)",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("CAREDASH_CONFIG"),
			Destination: &d.ConfigPath,
		},
	}
}

// Configure returns the dashboard configuration. Without a file the defaults are used.
func (d *Dashboard) Configure() (*model.DashboardConfig, error) {
	if d.ConfigPath == "" {
		return model.DefaultDashboardConfig(), nil
	}
	return LoadDashboardConfigFromFile(d.ConfigPath)
}

// LogValue returns structured log value
func (d Dashboard) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", d.ConfigPath),
	)
}

// LoadDashboardConfigFromFile loads the dashboard configuration from a YAML file
func LoadDashboardConfigFromFile(path string) (*model.DashboardConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config model.DashboardConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &config, nil
}
