package main

import (
	"github.com/corray333/storefront/internal/app"
	"github.com/corray333/storefront/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
