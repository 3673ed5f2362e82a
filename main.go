package main

import (
	"os"

	"github.com/roleboard/roleboard/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
