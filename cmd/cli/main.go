package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/helpdesk/internal/client/cli"
	"github.com/dmitrijs2005/helpdesk/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(context.Background())

}
