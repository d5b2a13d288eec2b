package kbquery

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const DefaultRegion = "us-west-2"

type Config struct {
	Region          string `envconfig:"AWS_REGION" default:"us-west-2"`
	KnowledgeBaseID string `envconfig:"KNOWLEDGE_BASE_ID"`
	// HTTPRouter serves Lambda events through the gin router instead of the plain handler.
	HTTPRouter bool   `envconfig:"HTTP_ROUTER" default:"false"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads an optional .env file, then the environment.
// A missing knowledge base ID is not an error here; it fails the first query.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	SetLogLevel(cfg.LogLevel)
	return cfg, nil
}

func (c Config) KnowledgeBase() (string, error) {
	if c.KnowledgeBaseID == "" {
		return "", ErrMissingKnowledgeBaseID
	}
	return c.KnowledgeBaseID, nil
}
