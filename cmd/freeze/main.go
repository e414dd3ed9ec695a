package main

import (
	"flag"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/jarana/guia/cmd/app"
)

func main() {
	dest := flag.String("dest", app.DefaultFreezeDir, "directory the static site is written to")
	flag.Parse()

	if err := app.Freeze(*dest); err != nil {
		panic(err)
	}
}
