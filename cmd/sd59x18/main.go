// Command sd59x18 multiplies signed 59.18-decimal fixed point numbers and
// checks conformance vectors.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/calebcase/sd59x18/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
