package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var dbTestConfig = db.NewConfigForLocalhost(
	"chat_application_db",
	"admin_user",
	"supersecretpassword",
)

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

func newTestMessageService(t *testing.T) (service.MessageService, db.Connection) {
	conn := newTestDbConnection(t)
	repos := repositories.New(conn)
	return service.NewMessageService(repos, newTestLogger()), conn
}

func generateTestEchoContextFromRequest(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rw := httptest.NewRecorder()

	ctx := e.NewContext(req, rw)
	return ctx, rw
}

func generateJsonRequest(t *testing.T, method string, target string, body any) *http.Request {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(body)
	assert.Nil(t, err, "Actual err: %v", err)

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func randomUserId() int64 {
	return rand.Int64N(1<<30) + 1
}
