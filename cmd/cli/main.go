package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fruitie/internal/client/cli"
	"github.com/dmitrijs2005/fruitie/internal/client/config"
	"github.com/dmitrijs2005/fruitie/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	w, closer := logging.NewFileWriter(cfg.LogFile)
	defer closer.Close()

	logger := logging.NewJSONLogger(w, slog.LevelInfo)
	app := cli.NewApp(cfg, logger)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
