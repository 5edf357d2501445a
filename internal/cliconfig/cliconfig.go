// Package cliconfig loads the bridgebid CLI's presentation settings from
// an HCL file: log level/destination and whether trace output is on by
// default. Nothing here reaches into the kernel itself (bridge/...),
// which takes no configuration and does no I/O.
package cliconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete bridgebid CLI configuration.
type Config struct {
	Logging LoggingSettings `hcl:"logging,block"`
	Display DisplaySettings `hcl:"display,block"`
}

// LoggingSettings controls where and how verbosely the CLI logs.
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DisplaySettings controls how the CLI renders its output.
type DisplaySettings struct {
	TraceByDefault bool   `hcl:"trace_by_default,optional"`
	HandFormat     string `hcl:"hand_format,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingSettings{Level: "info", File: ""},
		Display: DisplaySettings{TraceByDefault: false, HandFormat: "pbn"},
	}
}

// Load reads configuration from filename, falling back to Default if the
// file does not exist, and filling in any field the file leaves zero.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("cliconfig: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("cliconfig: decode %s: %s", filename, diags.Error())
	}

	def := Default()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Display.HandFormat == "" {
		cfg.Display.HandFormat = def.Display.HandFormat
	}
	return &cfg, nil
}
