package internal

import (
	"context"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
)

// PrepareStore initializes the schema and reports whether the service has to
// start degraded. The server starts either way: the health endpoint reports
// the store status and requests fail until it comes back.
func PrepareStore(
	ctx context.Context, conn db.Connection, policy db.RetryPolicy, log logger.Logger,
) (degraded bool) {
	if err := repositories.InitializeSchema(ctx, conn, policy, log); err != nil {
		log.Warnf("Starting without a usable store: %v", err)
		return true
	}

	return false
}
