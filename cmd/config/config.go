package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/format"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "CLI configuration commands",
	Long: `CLI configuration commands for kioskctl.

This command group includes listing the current configuration,
getting values and setting values.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]interface{}, len(config.Keys()))
		for _, key := range config.Keys() {
			v, err := config.Lookup(key)
			if err != nil {
				return err
			}
			if key == "auth.session_token" && v != "" {
				v = "********"
			}
			values[key] = v
		}
		if file := config.FileUsed(); file != "" && config.GetOutputFormat() == "table" {
			fmt.Printf("Config file: %s\n\n", file)
		}
		return format.Print(values)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to the config file.

Examples:
  kioskctl config set server.url https://console.hostkiosk.example
  kioskctl config set format.page_size 25
  kioskctl config set format.colors false`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	value, err := convert(args[0], args[1])
	if err != nil {
		return err
	}
	if err := config.Set(args[0], value); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	format.PrintSuccess("✓ %s = %v", args[0], value)
	return nil
}

// convert parses raw into the type of the key's default value
func convert(key, raw string) (interface{}, error) {
	def, ok := config.Defaults()[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key %q", key)
	}
	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a number, got %q", key, raw)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must not be negative", key)
		}
		return n, nil
	}
	return raw, nil
}

func init() {
	ConfigCmd.AddCommand(listCmd)
	ConfigCmd.AddCommand(getCmd)
	ConfigCmd.AddCommand(setCmd)
}
