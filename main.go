package main

import (
	"github.com/deskhand/deskhand/cmd"

	// Register the platform adapter for this host.
	_ "github.com/deskhand/deskhand/internal/backends"
)

func main() {
	cmd.Execute()
}
