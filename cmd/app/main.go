package main

import (
	"os"

	"github.com/senmay/Geo-Asystent-AI/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
