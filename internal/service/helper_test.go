package service

import (
	"context"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/internal/mocks"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var dbTestConfig = db.NewConfigForLocalhost(
	"chat_application_db",
	"admin_user",
	"supersecretpassword",
)

var someTime = time.Date(2025, 3, 29, 11, 42, 43, 0, time.UTC)

func newTestLogger() logger.Logger {
	return logger.New(os.Stdout)
}

func newTestDbConnection(t *testing.T) db.Connection {
	conn, err := db.New(dbTestConfig, newTestLogger())
	assert.Nil(t, err, "Actual err: %v", err)

	policy := db.RetryPolicy{Attempts: 1}
	err = repositories.InitializeSchema(context.Background(), conn, policy, newTestLogger())
	assert.Nil(t, err, "Actual err: %v", err)

	return conn
}

func newMockedMessageService(t *testing.T) (MessageService, *mocks.MockMessageRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMessageRepository(ctrl)

	repos := repositories.Repositories{
		Message: repo,
	}
	return NewMessageService(repos, newTestLogger()), repo
}

func randomUserId() int64 {
	return rand.Int64N(1<<30) + 1
}
