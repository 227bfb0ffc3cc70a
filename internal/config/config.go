package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec    string     `koanf:"spec"`
	Mode    string     `koanf:"mode"`
	Verbose bool       `koanf:"verbose"`
	Docs    DocsConfig `koanf:"docs"`
}

type DocsConfig struct {
	Templates string `koanf:"templates"`
	Strict    bool   `koanf:"strict"`
}

// BindCommonFlags binds the flags shared by every command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: specdoc.yaml)")
	flags.StringP("spec", "s", "", "Specification document path")
	flags.String("mode", "", "Document syntax: json, yaml")
	flags.Bool("verbose", false, "Enable debug logging")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("specdoc.yaml"); err == nil {
			configFile = "specdoc.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Mode == "" {
		cfg.Mode = "json"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil && v {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil && v {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("mode"); v != "" {
		m["mode"] = v
	}
	if v := getString("templates"); v != "" {
		m["docs.templates"] = v
	}
	if flagChanged("strict") {
		m["docs.strict"] = getBool("strict")
	}
	if flagChanged("verbose") {
		m["verbose"] = getBool("verbose")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validModes := map[string]bool{"": true, "json": true, "yaml": true}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode: %s (valid: json, yaml)", c.Mode)
	}

	return nil
}
