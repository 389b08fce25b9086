package repositories

import "github.com/Knoblauchpilze/record-api/pkg/db"

type Repositories struct {
	Message MessageRepository
}

func New(conn db.Connection) Repositories {
	return Repositories{
		Message: NewMessageRepository(conn),
	}
}
