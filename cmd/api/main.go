package main

import (
	_ "momo_relay/docs"
	"momo_relay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mobile Money Relay API
// @version         1.0
// @description     Relays mobile-money payment initiations and verifications to MoneyUnify.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
