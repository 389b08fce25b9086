package repositories

import (
	"context"
	"time"

	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/persistence"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=../../internal/mocks/mock_message_repository.go -package=mocks github.com/Knoblauchpilze/record-api/pkg/repositories MessageRepository

type MessageRepository interface {
	Create(ctx context.Context, msg persistence.Message) (persistence.Message, error)
	ListForUser(ctx context.Context, user int64) ([]persistence.Message, error)
}

type messageRepositoryImpl struct {
	conn db.Connection
}

func NewMessageRepository(conn db.Connection) MessageRepository {
	return &messageRepositoryImpl{
		conn: conn,
	}
}

type generatedFields struct {
	Id        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

const createMessageSqlTemplate = `
INSERT INTO messages (sender_id, receiver_id, message)
	VALUES ($1, $2, $3)
	RETURNING id, created_at`

func (r *messageRepositoryImpl) Create(
	ctx context.Context, msg persistence.Message,
) (persistence.Message, error) {
	generated, err := db.QueryOne[generatedFields](
		ctx,
		r.conn,
		createMessageSqlTemplate,
		msg.SenderId,
		msg.ReceiverId,
		msg.Message,
	)
	if err != nil {
		return persistence.Message{}, err
	}

	msg.Id = generated.Id
	msg.CreatedAt = generated.CreatedAt.UTC()

	return msg, nil
}

const listForUserSqlTemplate = `
SELECT
	id,
	sender_id,
	receiver_id,
	message,
	created_at
FROM
	messages
WHERE
	sender_id = $1
	OR receiver_id = $1
ORDER BY
	created_at DESC,
	id DESC`

func (r *messageRepositoryImpl) ListForUser(
	ctx context.Context, user int64,
) ([]persistence.Message, error) {
	messages, err := db.QueryAll[persistence.Message](ctx, r.conn, listForUserSqlTemplate, user)

	if err == nil {
		for id, msg := range messages {
			messages[id].CreatedAt = msg.CreatedAt.UTC()
		}
	}

	return messages, err
}
