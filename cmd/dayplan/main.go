package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/dayplan/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration is loaded from --config once flags are parsed.
	app := ui.NewApp(nil)
	defer app.Close()
	return app.Execute()
}
