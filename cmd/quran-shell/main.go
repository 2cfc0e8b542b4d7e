package main

import (
	"log"

	"github.com/sulemanahsancui/quran-pak/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("quran-shell failed to start: %v", err)
	}
}
