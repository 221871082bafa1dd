package config

/**
Config provides the parser for matcher configuration files, a YAML mapping of
the keys "alphabet" and "modulus".
*/

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AppImageCrafters/libkarprabin-go/rollinghash"
	"gopkg.in/yaml.v3"
)

const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz"

var (
	ErrEmptyAlphabet = errors.New("config: alphabet must not be empty")
	ErrZeroModulus   = errors.New("config: modulus must be positive")
)

type Config struct {
	Alphabet string `yaml:"alphabet"`
	Modulus  uint64 `yaml:"modulus"`
}

func Default() *Config {
	return &Config{
		Alphabet: DefaultAlphabet,
		Modulus:  rollinghash.DefaultModulus,
	}
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	input, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer input.Close()

	config, err := ReadConfig(input)
	if err != nil {
		return nil, fmt.Errorf("failed to process config file '%s': %w", path, err)
	}
	return config, nil
}

// ReadConfig parses a configuration from input. Keys are matched without
// regard to case and missing keys keep their default values.
func ReadConfig(input io.Reader) (*Config, error) {
	config := Default()

	var doc yaml.Node
	err := yaml.NewDecoder(input).Decode(&doc)
	if err == io.EOF {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config: expected a mapping at line %d", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if err := setValue(config, strings.ToLower(k.Value), v); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setValue(c *Config, k string, v *yaml.Node) error {
	switch k {
	case "alphabet":
		if err := v.Decode(&c.Alphabet); err != nil {
			return fmt.Errorf("config: invalid alphabet at line %d: %w", v.Line, err)
		}
	case "modulus":
		if err := v.Decode(&c.Modulus); err != nil {
			return fmt.Errorf("config: invalid modulus at line %d: %w", v.Line, err)
		}
	default:
		log.Printf("Unknown karprabin config key: %s", k)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Alphabet == "" {
		return ErrEmptyAlphabet
	}
	if c.Modulus == 0 {
		return ErrZeroModulus
	}
	return nil
}
