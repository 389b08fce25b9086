package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/cmd/record-api/internal"
	"github.com/Knoblauchpilze/record-api/internal/service"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
)

func newLogger(pretty bool) logger.Logger {
	if pretty {
		return logger.New(logger.NewPrettyWriter(os.Stdout))
	}
	return logger.New(os.Stdout)
}

func main() {
	conf, err := internal.LoadConfiguration()
	if err != nil {
		log := newLogger(true)
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	log := newLogger(conf.PrettyLogs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.New(conf.Database, log)
	if err != nil {
		log.Errorf("Failed to create db connection: %v", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if degraded := internal.PrepareStore(ctx, conn, db.DefaultRetryPolicy(), log); degraded {
		log.Warnf("Serving in degraded mode")
	}

	repos := repositories.New(conn)

	props := internal.HttpServerProps{
		Config:   conf,
		Services: service.New(conn, repos, log),
		Log:      log,
	}

	if err := internal.RunHttpServer(ctx, props); err != nil {
		log.Errorf("Error while serving HTTP: %+v", err)
		conn.Close(context.Background())
		os.Exit(1)
	}

	log.Infof("Server stopped")
}
