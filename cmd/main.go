package main

import (
	"context"
	"os"

	"watchlist/internal/logger"
)

func main() {
	app := newApp(newRunner(os.Stdin, os.Stdout, int(os.Stdin.Fd())))
	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.New(logger.InfoLevel).Fatalw("application error", "err", err)
	}
}
