package service

import (
	"context"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/db"
)

const (
	DatabaseConnected        = "connected"
	DatabaseConnectionFailed = "connection_failed"

	databaseErrorConnectingPrefix = "error_connecting: "
	databaseErrorQueryPrefix      = "error_query: "
)

type HealthReport struct {
	DatabaseOk     bool
	DatabaseStatus string
	// Empty when the database is reachable or when no cause is known.
	DatabaseErrorDetails string
}

type HealthService interface {
	Check(ctx context.Context) HealthReport
}

type healthServiceImpl struct {
	conn db.Connection
	log  logger.Logger
}

func NewHealthService(conn db.Connection, log logger.Logger) HealthService {
	return &healthServiceImpl{
		conn: conn,
		log:  log,
	}
}

func (s *healthServiceImpl) Check(ctx context.Context) HealthReport {
	err := s.conn.Ping(ctx)
	if err == nil {
		return HealthReport{
			DatabaseOk:     true,
			DatabaseStatus: DatabaseConnected,
		}
	}

	report := HealthReport{
		DatabaseOk:           false,
		DatabaseErrorDetails: causeText(err),
	}

	switch {
	case errors.IsErrorWithCode(err, db.NotConnected):
		report.DatabaseStatus = DatabaseConnectionFailed
		report.DatabaseErrorDetails = ""
	case errors.IsErrorWithCode(err, db.QueryFailed):
		report.DatabaseStatus = databaseErrorQueryPrefix + report.DatabaseErrorDetails
	default:
		report.DatabaseStatus = databaseErrorConnectingPrefix + report.DatabaseErrorDetails
	}

	s.log.Warnf("Health check failed, database status: %s", report.DatabaseStatus)

	return report
}

func causeText(err error) string {
	if cause := rootCause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
