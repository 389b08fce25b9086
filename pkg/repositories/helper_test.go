package repositories

import (
	"context"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/persistence"
	"github.com/stretchr/testify/assert"
)

var dbTestConfig = db.NewConfigForLocalhost(
	"chat_application_db",
	"admin_user",
	"supersecretpassword",
)

var fastRetryPolicy = db.RetryPolicy{
	Attempts: 2,
	Delay:    10 * time.Millisecond,
}

func newTestConnection(t *testing.T) db.Connection {
	conn, err := db.New(dbTestConfig, logger.New(os.Stdout))
	assert.Nil(t, err, "Actual err: %v", err)

	err = InitializeSchema(context.Background(), conn, fastRetryPolicy, logger.New(os.Stdout))
	assert.Nil(t, err, "Actual err: %v", err)

	return conn
}

// randomUserId keeps tests sharing the same table from seeing each other's
// messages.
func randomUserId() int64 {
	return rand.Int64N(1<<30) + 1
}

func insertTestMessage(
	t *testing.T,
	conn db.Connection,
	sender int64,
	receiver *int64,
	createdAt time.Time,
) persistence.Message {
	msg, err := db.QueryOne[persistence.Message](
		context.Background(),
		conn,
		`INSERT INTO
			messages (sender_id, receiver_id, message, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, sender_id, receiver_id, message, created_at`,
		sender,
		receiver,
		"my-message",
		createdAt,
	)
	assert.Nil(t, err, "Actual err: %v", err)

	msg.CreatedAt = msg.CreatedAt.UTC()
	return msg
}

func assertMessageExists(t *testing.T, conn db.Connection, id int64) {
	t.Helper()

	value, err := db.QueryOne[int64](
		context.Background(),
		conn,
		"SELECT id FROM messages WHERE id = $1",
		id,
	)
	assert.Nil(t, err, "Actual err: %v", err)
	assert.Equal(t, id, value)
}

func countMessagesTables(t *testing.T, conn db.Connection) int {
	value, err := db.QueryOne[int](
		context.Background(),
		conn,
		`SELECT
			COUNT(*)
		FROM
			information_schema.tables
		WHERE
			table_schema = current_schema()
			AND table_name = 'messages'`,
	)
	assert.Nil(t, err, "Actual err: %v", err)
	return value
}
