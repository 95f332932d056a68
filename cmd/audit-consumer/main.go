// Command audit-consumer appends every content-change event published by
// the server to logs/content.log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/queue"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("load .env: %v", err)
	}
	qc := config.LoadQueueConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("consuming %s", qc.QueueName)
	if err := queue.StartContentConsumer(ctx, qc.URL, qc.QueueName, "logs"); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Info("consumer stopped")
}
