package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
	"github.com/stretchr/testify/assert"
)

const reasonableWaitTimeForServerToBeUp = 200 * time.Millisecond

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

func newUnreachableDbConnection(t *testing.T) db.Connection {
	conf := dbTestConfig
	conf.Port = 1
	conf.ConnectTimeout = 1 * time.Second

	conn, err := db.New(conf, newTestLogger())
	assert.Nil(t, err, "Actual err: %v", err)
	return conn
}

func newTestHttpProps(port int, conn db.Connection) HttpServerProps {
	conf := DefaultConfig()
	conf.Server.Port = port
	conf.Server.ShutdownTimeout = 1 * time.Second

	log := newTestLogger()
	repos := repositories.New(conn)

	return HttpServerProps{
		Config:   conf,
		Services: service.New(conn, repos, log),
		Log:      log,
	}
}

func asyncCancelContext(delay time.Duration, cancel context.CancelFunc) {
	go func() {
		time.Sleep(delay)
		cancel()
	}()
}

func asyncRunHttpServer(
	t *testing.T,
	props HttpServerProps,
	ctx context.Context,
) *sync.WaitGroup {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if panicErr := recover(); panicErr != nil {
				assert.Failf(t, "Server panicked", "Panic details: %v", panicErr)
			}
		}()
		err := RunHttpServer(ctx, props)
		assert.Nil(t, err, "Actual err: %v", err)
	}()

	time.Sleep(reasonableWaitTimeForServerToBeUp)

	return &wg
}

func doRequest(t *testing.T, method string, url string) *http.Response {
	return doRequestWithData(t, method, url, nil)
}

func doRequestWithData(t *testing.T, method string, url string, data any) *http.Response {
	var body bytes.Buffer
	if data != nil {
		err := json.NewEncoder(&body).Encode(data)
		assert.Nil(t, err, "Actual err: %v", err)
	}

	req, err := http.NewRequest(method, url, &body)
	assert.Nil(t, err, "Actual err: %v", err)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	rw, err := client.Do(req)
	assert.Nil(t, err, "Actual err: %v", err)

	return rw
}

func decodeBody[T any](t *testing.T, rw *http.Response) T {
	defer rw.Body.Close()

	var out T
	err := json.NewDecoder(rw.Body).Decode(&out)
	assert.Nil(t, err, "Actual err: %v", err)

	return out
}
