package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileKey     = "LEDGER_CONFIG"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	Ledger      LedgerConfig      `yaml:"ledger"`
	Frankfurter FrankfurterConfig `yaml:"frankfurter"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	s := &Service{}

	file := os.Getenv(configFileKey)
	if file == "" {
		file = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) Ledger() *LedgerConfig {
	return &s.config.Ledger
}

func (s *Service) Frankfurter() *FrankfurterConfig {
	return &s.config.Frankfurter
}
