package repositories

import (
	"context"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/db"
)

// Sent as a single argument-less statement so that it runs through the simple
// protocol in one implicit transaction: the advisory lock serializes
// instances starting against the same store at the same time.
const initializeSchemaSqlTemplate = `
SELECT pg_advisory_xact_lock(727365);

CREATE TABLE IF NOT EXISTS messages (
	id SERIAL PRIMARY KEY,
	sender_id INTEGER NOT NULL,
	receiver_id INTEGER,
	message TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT now()
);

CREATE INDEX IF NOT EXISTS messages_sender_id_idx ON messages (sender_id);
CREATE INDEX IF NOT EXISTS messages_receiver_id_idx ON messages (receiver_id);`

// InitializeSchema waits for the store according to the policy and then
// makes sure the messages table exists.
func InitializeSchema(
	ctx context.Context, conn db.Connection, policy db.RetryPolicy, log logger.Logger,
) error {
	if err := db.ConnectWithRetry(ctx, conn, policy, log); err != nil {
		log.Errorf("Database unreachable, schema not initialized, the service will run degraded: %v", err)
		return err
	}

	if _, err := conn.Exec(ctx, initializeSchemaSqlTemplate); err != nil {
		log.Errorf("Failed to initialize table 'messages': %v", err)
		return err
	}

	log.Infof("Table 'messages' verified/created")

	return nil
}
