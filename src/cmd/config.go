package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/apimgr/searchconv/src/config"
	"github.com/apimgr/searchconv/src/paths"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *current.cfg
		if cfg.Store.Redis.Password != "" {
			cfg.Store.Redis.Password = "********"
		}
		if current.out.format == "json" {
			return current.out.JSON(cfg)
		}
		out, err := yaml.Marshal(&cfg)
		if err != nil {
			return err
		}
		current.out.Printf("%s", out)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := current.v.Get(args[0])
		if value == nil {
			return fmt.Errorf("key not found: %s", args[0])
		}
		current.out.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		path := current.cfgPath

		// Only file contents are written back, never env or flag overrides.
		file := viper.New()
		file.SetConfigFile(path)
		file.SetConfigType("yaml")
		if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		file.Set(key, value)

		check := viper.New()
		config.SetDefaults(check)
		if err := check.MergeConfigMap(file.AllSettings()); err != nil {
			return err
		}
		if _, err := config.Load(check); err != nil {
			return err
		}

		if err := paths.EnsureParent(path); err != nil {
			return err
		}
		if err := file.WriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		current.out.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := current.cfgPath
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
		}

		data, err := yaml.Marshal(config.Default())
		if err != nil {
			return err
		}
		if err := paths.EnsureParent(path); err != nil {
			return err
		}
		content := append([]byte("# searchconv configuration\n"), data...)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return err
		}

		current.out.Printf("Created config file: %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current.out.Println(current.cfgPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
