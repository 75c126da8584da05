package main

import (
	"fmt"
	"os"

	"github.com/raywall/apigw-lambda/internal/cli"
	"github.com/raywall/apigw-lambda/internal/config"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(getVersion()); err != nil {
		os.Exit(1)
	}
}
