// The stay server. Wires the booking, hotel, pricing and chat domains
// together through di and serves the REST API until SIGTERM.
package main

import (
	"stay/config"
	"stay/di"
	"stay/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
