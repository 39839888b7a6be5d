package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, ErrNoMatch) {
			fmt.Fprintf(app.ErrWriter, "%s: %v\n", app.Name, err)
		}
		os.Exit(ExitCodeFailure)
	}
}
