// Package config holds the runner's YAML configuration: an embedded
// default, a loader that tolerates a missing file, and validation.
package config

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte

	//go:embed default/commands.txt
	sampleScriptData []byte
)

const (
	// ConfigurationName is the file name looked up inside the config dir.
	ConfigurationName = "config.yaml"
	// SampleScriptName is the example directive file written by Initialize.
	SampleScriptName = "commands.txt"
)

// Trace modes.
const (
	TraceAuto = "auto"
	TraceOn   = "on"
	TraceOff  = "off"
)

type Configuration struct {
	// Trace controls diagnostic output: "on" (always colorized), "off"
	// (silent) or "auto" (colorized only on a terminal).
	Trace string `json:"trace" validate:"oneof=auto on off"`

	// StripDelaySuffix removes the "@N" delay marker from a command's
	// argument vector before launch. Off by default: the marker is passed
	// through to the command as a literal trailing argument.
	StripDelaySuffix bool `json:"strip_delay_suffix"`

	// WorkingDir is the directory commands run in. Empty means the
	// runner's own working directory.
	WorkingDir string `json:"working_dir"`

	// Environment is extra KEY=VALUE pairs appended to the inherited
	// environment of every launched command.
	Environment []string `json:"environment"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	for _, kv := range c.Environment {
		if !strings.Contains(kv, "=") {
			return fmt.Errorf("environment entry %q is not KEY=VALUE", kv)
		}
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
