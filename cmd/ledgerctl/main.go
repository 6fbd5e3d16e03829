package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/SscSPs/pocket_ledger/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewRootCmd(cli.DefaultAppFactory))
	stop()
	os.Exit(code)
}
