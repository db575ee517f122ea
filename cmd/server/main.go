package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/peerlink/internal/server"
	"github.com/dmitrijs2005/peerlink/internal/server/config"
)

func main() {
	os.Exit(run())
}

func run() int {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	app.Run(ctx)
	return 0
}
