package main

import (
	"log"

	portfolio "github.com/ybakr/portfolio"
)

func main() {
	app := portfolio.New(portfolio.ConfigFromEnv())
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
