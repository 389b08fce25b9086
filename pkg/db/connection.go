package db

import (
	"context"
	"sync/atomic"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connection gives access to the store. Each call leases a single pooled
// connection for the duration of one statement and gives it back before
// returning (or when the returned rows are closed).
type Connection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (int64, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	Close(ctx context.Context)
}

type connectionImpl struct {
	config Config
	pool   *pgxpool.Pool
	closed atomic.Bool
	log    logger.Logger
}

const pingSqlQuery = "SELECT 1"

// New prepares a bounded pool for the store described by the configuration.
// No connection is opened until the first lease.
func New(config Config, log logger.Logger) (Connection, error) {
	poolConf, err := pgxpool.ParseConfig(config.ConnectionString())
	if err != nil {
		return nil, errors.WrapCode(err, InvalidConfiguration)
	}

	poolConf.ConnConfig.ConnectTimeout = config.ConnectTimeout
	if config.MaxConnections > 0 {
		poolConf.MaxConns = int32(config.MaxConnections)
	}
	if config.MaxIdleTime > 0 {
		poolConf.MaxConnIdleTime = config.MaxIdleTime
	}
	if config.HealthCheckPeriod > 0 {
		poolConf.HealthCheckPeriod = config.HealthCheckPeriod
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConf)
	if err != nil {
		return nil, errors.WrapCode(err, InvalidConfiguration)
	}

	return &connectionImpl{
		config: config,
		pool:   pool,
		log:    log,
	}, nil
}

func (c *connectionImpl) Ping(ctx context.Context) error {
	conn, err := c.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, pingSqlQuery); err != nil {
		return c.wrapQueryError(err)
	}

	return nil
}

func (c *connectionImpl) Exec(
	ctx context.Context, sql string, arguments ...any,
) (int64, error) {
	conn, err := c.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, sql, arguments...)
	if err != nil {
		return 0, c.wrapQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (c *connectionImpl) Query(
	ctx context.Context, sql string, arguments ...any,
) (pgx.Rows, error) {
	conn, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, arguments...)
	if err != nil {
		conn.Release()
		return nil, c.wrapQueryError(err)
	}

	return &leasedRows{Rows: rows, conn: conn}, nil
}

func (c *connectionImpl) Close(_ context.Context) {
	if c.closed.Swap(true) {
		return
	}

	c.pool.Close()
	c.log.Debugf("Closed connection pool to %v", c.config)
}

func (c *connectionImpl) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if c.closed.Load() {
		return nil, errors.NewCode(NotConnected)
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		c.log.Errorf("Failed to connect to %v: %v", c.config, err)
		return nil, errors.WrapCode(err, ConnectionFailed)
	}

	return conn, nil
}

func (c *connectionImpl) wrapQueryError(err error) error {
	c.log.Debugf("Query failed on %v: %v", c.config, err)
	return wrapStatementError(err)
}

// leasedRows gives the connection back to the pool once the rows are closed.
type leasedRows struct {
	pgx.Rows
	conn     *pgxpool.Conn
	released bool
}

func (r *leasedRows) Close() {
	r.Rows.Close()
	if !r.released {
		r.released = true
		r.conn.Release()
	}
}
