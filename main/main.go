package main

import (
	"flag"
	"os"

	"kbquery"
	"kbquery/query"
	"kbquery/server"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	local := flag.String("local", "", "serve HTTP on this address instead of running as a Lambda function, e.g. :8080")
	flag.Parse()

	log := kbquery.Logger
	cfg, err := kbquery.LoadConfig()
	if err != nil {
		log.Error("Loading configuration failed", "error", err)
		os.Exit(1)
	}
	adapter := query.New(cfg)

	if *local != "" {
		log.Info("Serving locally", "address", *local, "region", cfg.Region)
		if err := server.New(adapter).Run(*local); err != nil {
			log.Error("Server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	if cfg.HTTPRouter {
		lambda.Start(server.NewLambda(adapter).ProxyWithContext)
		return
	}
	lambda.Start(adapter.HandleEvent)
}
