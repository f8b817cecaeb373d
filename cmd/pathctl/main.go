package main

import (
	"os"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
