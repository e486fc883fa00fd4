package main

import (
	"context"

	"github.com/faizmokh/jadual/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
