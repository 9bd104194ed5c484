package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/stytch-mgmt/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag names.
const (
	flagConfig    = "config"
	flagKeyID     = "key-id"
	flagKeySecret = "key-secret"
	flagBaseURL   = "base-url"
	flagTimeout   = "timeout"
	flagOutput    = "output"
	flagVerbose   = "verbose"
)

// Viper keys. They double as the config file keys, and as environment
// variable names once upper-cased and prefixed with STYTCH_.
const (
	keyWorkspaceKeyID     = "workspace_key_id"
	keyWorkspaceKeySecret = "workspace_key_secret"
	keyBaseURL            = "base_url"
	keyTimeout            = "timeout"
	keyOutput             = "output"
	keyVerbose            = "verbose"
	keyProject            = "project"
	keyEnvironment        = "environment"
)

// NewRootCommand creates the stytchmgmt root command with every command
// group attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "stytchmgmt",
		Short: "Stytch workspace management CLI",
		Long: `A command-line interface for the Stytch workspace management API.

Manage projects, environments, secrets, redirect URLs, templates and the
rest of an environment's configuration with a workspace key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := initConfig(cfgFile)
			if err != nil {
				return err
			}

			return validateOutputFormat(viper.GetString(keyOutput))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, flagConfig, "c", "", "config file (default is $HOME/.stytchmgmt/config.yml)")
	flags.String(flagKeyID, "", "workspace key id")
	flags.String(flagKeySecret, "", "workspace key secret")
	flags.String(flagBaseURL, "", "management API base URL (default "+constants.DefaultBaseURL+")")
	flags.Duration(flagTimeout, constants.DefaultTimeout, "per-request timeout")
	flags.StringP(flagOutput, "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP(flagVerbose, "v", false, "log HTTP requests to stderr")

	_ = viper.BindPFlag(keyWorkspaceKeyID, flags.Lookup(flagKeyID))
	_ = viper.BindPFlag(keyWorkspaceKeySecret, flags.Lookup(flagKeySecret))
	_ = viper.BindPFlag(keyBaseURL, flags.Lookup(flagBaseURL))
	_ = viper.BindPFlag(keyTimeout, flags.Lookup(flagTimeout))
	_ = viper.BindPFlag(keyOutput, flags.Lookup(flagOutput))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup(flagVerbose))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewEnvironmentsCommand())
	rootCmd.AddCommand(NewSecretsCommand())
	rootCmd.AddCommand(NewPublicTokensCommand())
	rootCmd.AddCommand(NewRedirectURLsCommand())
	rootCmd.AddCommand(NewEmailTemplatesCommand())
	rootCmd.AddCommand(NewJWTTemplatesCommand())
	rootCmd.AddCommand(NewPasswordStrengthCommand())
	rootCmd.AddCommand(NewRBACPolicyCommand())
	rootCmd.AddCommand(NewTrustedTokenProfilesCommand())
	rootCmd.AddCommand(NewCountryCodesCommand())
	rootCmd.AddCommand(NewEventLogStreamingCommand())
	rootCmd.AddCommand(NewSDKCommand())

	return rootCmd
}

// initConfig wires the configuration sources. Viper resolves each key from
// an explicitly set flag first, then the environment, then the config file.
func initConfig(cfgFile string) error {
	// A missing .env file is not an error.
	_ = godotenv.Load(constants.DotEnvFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName(strings.TrimSuffix(constants.ConfigFileName, filepath.Ext(constants.ConfigFileName)))
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool(keyVerbose) {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName), nil
}

func defaultConfigFile() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName), nil
}
