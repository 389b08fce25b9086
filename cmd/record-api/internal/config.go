package internal

import (
	"time"

	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT,default=5002"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=5s"`
}

type Configuration struct {
	Server     ServerConfig
	Database   db.Config
	PrettyLogs bool `env:"LOG_PRETTY,default=true"`
}

func DefaultConfig() Configuration {
	return Configuration{
		Server: ServerConfig{
			Port:            5002,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: db.NewConfig(
			"postgres_db",
			"chat_application_db",
			"admin_user",
			"supersecretpassword",
		),
		PrettyLogs: true,
	}
}

// LoadConfiguration reads the configuration from the environment, seeded from
// a .env file in the working directory when one exists.
func LoadConfiguration() (Configuration, error) {
	// The file is optional: variables may come from the environment alone.
	_ = godotenv.Load()

	var conf Configuration
	if _, err := env.UnmarshalFromEnviron(&conf); err != nil {
		return Configuration{}, err
	}

	return conf, nil
}
