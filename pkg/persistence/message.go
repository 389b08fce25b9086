package persistence

import (
	"time"
)

type Message struct {
	Id         int64  `db:"id"`
	SenderId   int64  `db:"sender_id"`
	ReceiverId *int64 `db:"receiver_id"`
	Message    string `db:"message"`

	CreatedAt time.Time `db:"created_at"`
}
