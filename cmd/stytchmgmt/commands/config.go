package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	WorkspaceKeyID     string `json:"workspace_key_id,omitempty"     yaml:"workspace_key_id,omitempty"`
	WorkspaceKeySecret string `json:"workspace_key_secret,omitempty" yaml:"workspace_key_secret,omitempty"`
	BaseURL            string `json:"base_url,omitempty"             yaml:"base_url,omitempty"`
	Timeout            string `json:"timeout,omitempty"              yaml:"timeout,omitempty"`
	Output             string `json:"output,omitempty"               yaml:"output,omitempty"`
	Project            string `json:"project,omitempty"              yaml:"project,omitempty"`
	Environment        string `json:"environment,omitempty"          yaml:"environment,omitempty"`
}

// ConfigUpdateResult is printed after a configuration change.
type ConfigUpdateResult struct {
	Action string `json:"action"          yaml:"action"`
	Key    string `json:"key"             yaml:"key"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	File   string `json:"file"            yaml:"file"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the stytchmgmt configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the workspace key secret masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.WorkspaceKeySecret != "" {
				config.WorkspaceKeySecret = constants.MaskedSecret
			}

			return writeOutput(cmd, config, func(w io.Writer) error {
				return renderProperties(w, "", [][]string{
					{"Workspace Key ID", orNotAvailable(config.WorkspaceKeyID)},
					{"Workspace Key Secret", orNotAvailable(config.WorkspaceKeySecret)},
					{"Base URL", orNotAvailable(config.BaseURL)},
					{"Timeout", config.Timeout},
					{"Output", config.Output},
					{"Project", orNotAvailable(config.Project)},
					{"Environment", orNotAvailable(config.Environment)},
					{"Config File", orNotAvailable(viper.ConfigFileUsed())},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Keys: workspace_key_id, workspace_key_secret, base_url, timeout, output,
project, environment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			configFile, err := saveConfig(config)
			if err != nil {
				return err
			}

			shown := value
			if key == keyWorkspaceKeySecret {
				shown = constants.MaskedSecret
			}

			result := ConfigUpdateResult{Action: "set", Key: key, Value: shown, File: configFile}

			return writeOutput(cmd, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Set %s = %s in %s\n", key, shown, configFile)

				return err
			})
		},
	}
}

// loadConfig returns the effective configuration from every source.
func loadConfig() *Config {
	return &Config{
		WorkspaceKeyID:     viper.GetString(keyWorkspaceKeyID),
		WorkspaceKeySecret: viper.GetString(keyWorkspaceKeySecret),
		BaseURL:            viper.GetString(keyBaseURL),
		Timeout:            viper.GetDuration(keyTimeout).String(),
		Output:             viper.GetString(keyOutput),
		Project:            viper.GetString(keyProject),
		Environment:        viper.GetString(keyEnvironment),
	}
}

// readConfigFile reads only the config file, so values from flags and the
// environment are not written back.
func readConfigFile() (*Config, error) {
	config := &Config{}

	configFile, err := defaultConfigFile()
	if err != nil {
		return nil, err
	}

	// configFile is built from the home directory or the --config flag.
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyWorkspaceKeyID:
		config.WorkspaceKeyID = value
	case keyWorkspaceKeySecret:
		config.WorkspaceKeySecret = value
	case keyBaseURL:
		config.BaseURL = value
	case keyTimeout:
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = value
	case keyOutput:
		err := validateOutputFormat(value)
		if err != nil {
			return err
		}

		config.Output = value
	case keyProject:
		config.Project = value
	case keyEnvironment:
		config.Environment = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func saveConfig(config *Config) (string, error) {
	configFile, err := defaultConfigFile()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
