package service

import (
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
)

type Services struct {
	Message MessageService
	Health  HealthService
}

func New(
	conn db.Connection, repos repositories.Repositories, log logger.Logger,
) Services {
	return Services{
		Message: NewMessageService(repos, log),
		Health:  NewHealthService(conn, log),
	}
}
