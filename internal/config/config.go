package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// DeletePolicy selects how CatalogService.Remove disposes of a product
type DeletePolicy string

const (
	DeletePolicyHard DeletePolicy = "hard"
	DeletePolicySoft DeletePolicy = "soft"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

// CatalogConfig holds catalog-specific behavior switches
type CatalogConfig struct {
	DeletePolicy DeletePolicy
}

// IsDevelopment reports whether the server runs in the designated
// non-production mode; destructive seeding is only permitted here.
func (s ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

// DSN builds a postgres connection string from the database settings
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("CATALOG_DELETE_POLICY", string(DeletePolicyHard))

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	deletePolicy := DeletePolicy(viper.GetString("CATALOG_DELETE_POLICY"))
	if deletePolicy != DeletePolicyHard && deletePolicy != DeletePolicySoft {
		log.Printf("Warning: unknown CATALOG_DELETE_POLICY %q, falling back to hard", deletePolicy)
		deletePolicy = DeletePolicyHard
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Catalog: CatalogConfig{
			DeletePolicy: deletePolicy,
		},
	}
}
