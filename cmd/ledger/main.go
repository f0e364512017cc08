package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"multiledger/internal/clients/console"
	"multiledger/internal/clients/frankfurter"
	"multiledger/internal/config"
	"multiledger/internal/logger"
	"multiledger/internal/model/ledger"
	"multiledger/internal/model/messages"
	"multiledger/internal/model/rates"
)

func main() {
	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	resolver := rates.NewResolver(frankfurter.New(conf.Frankfurter()))
	book := ledger.New(ctx, resolver, conf.Ledger())

	client := console.New(os.Stdin, os.Stdout)
	msgService := messages.NewService(client, book)

	client.ListenUpdates(ctx, msgService)
}
