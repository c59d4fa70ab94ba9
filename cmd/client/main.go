package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/freshify/internal/buildinfo"
	"github.com/dmitrijs2005/freshify/internal/client/cli"
	"github.com/dmitrijs2005/freshify/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
