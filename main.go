package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/gruposcout/tropa-api/cmd/app"
)

// @contact.name   Grupo Scout API Support
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
