package main

import (
	"calculator-service/internal/app/delivery/cli"
	"calculator-service/internal/pkg/utils"
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

func main() {
	log := zap.NewNop()
	if utils.GetEnvBool("CALCCTL_DEBUG", false) {
		if devLogger, err := zap.NewDevelopment(); err == nil {
			log = devLogger
		}
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(log).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
