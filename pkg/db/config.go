package db

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	Host     string `env:"DB_HOST,default=postgres_db"`
	Port     int    `env:"DB_PORT,default=5432"`
	Database string `env:"POSTGRES_DB,default=chat_application_db"`
	User     string `env:"POSTGRES_USER,default=admin_user"`
	// Placeholder default, must be overridden outside of local setups.
	Password string `env:"POSTGRES_PASSWORD,default=supersecretpassword"`

	ConnectTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT,default=5s"`
	MaxConnections    int           `env:"DB_MAX_CONNECTIONS,default=10"`
	MaxIdleTime       time.Duration `env:"DB_MAX_IDLE_TIME,default=5m"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD,default=1m"`
}

const (
	defaultPort              = 5432
	defaultConnectTimeout    = 5 * time.Second
	defaultMaxConnections    = 10
	defaultMaxIdleTime       = 5 * time.Minute
	defaultHealthCheckPeriod = 1 * time.Minute
)

func NewConfig(host string, database string, user string, password string) Config {
	return Config{
		Host:              host,
		Port:              defaultPort,
		Database:          database,
		User:              user,
		Password:          password,
		ConnectTimeout:    defaultConnectTimeout,
		MaxConnections:    defaultMaxConnections,
		MaxIdleTime:       defaultMaxIdleTime,
		HealthCheckPeriod: defaultHealthCheckPeriod,
	}
}

func NewConfigForLocalhost(database string, user string, password string) Config {
	return NewConfig("localhost", database, user, password)
}

// ConnectionString returns a postgres URL usable by pgx. It contains the
// password and must not be logged.
func (c Config) ConnectionString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}

	q := u.Query()
	q.Set("sslmode", "disable")
	q.Set("connect_timeout", fmt.Sprintf("%d", int(c.ConnectTimeout.Seconds())))
	u.RawQuery = q.Encode()

	return u.String()
}

func (c Config) String() string {
	return fmt.Sprintf(
		"%s@%s:%d/%s (connect timeout: %v, max connections: %d)",
		c.User,
		c.Host,
		c.Port,
		c.Database,
		c.ConnectTimeout,
		c.MaxConnections,
	)
}
