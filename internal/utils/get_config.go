package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Upstream kitchen API
	UpstreamAPIURL   string `yaml:"UPSTREAM_API_URL"`
	UpstreamAPIToken string `yaml:"UPSTREAM_API_TOKEN"`

	// Receipt scanner collaborator
	ScannerURL string `yaml:"SCANNER_URL"`

	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// Identity attached to suggestion ingredients as added_by
	ContributorID string `yaml:"CONTRIBUTOR_ID"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig returns the named config value, with the environment taking
// precedence over config.yaml so deployments can override single keys.
func GetConfig(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	switch key {
	case "UPSTREAM_API_URL":
		return config.UpstreamAPIURL
	case "UPSTREAM_API_TOKEN":
		return config.UpstreamAPIToken
	case "SCANNER_URL":
		return config.ScannerURL
	case "APP_PORT":
		return config.AppPort
	case "CONTRIBUTOR_ID":
		return config.ContributorID
	default:
		return ""
	}
}
