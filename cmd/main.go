/**
 * @description
 * This is the main entry point for the deposit-service. It is responsible
 * for initializing all components of the service: configuration, the pawaPay
 * API client, the core deposit service, and the HTTP server. It wires
 * everything together and starts the service.
 *
 * @dependencies
 * - log, net/http: Standard Go libraries for logging and HTTP server functionality.
 * - internal/api, internal/app, internal/config: Internal packages for the service.
 * - pkg/pawapay: Client for the pawaPay deposits API.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dave-evans-pawapay/deposit-service/internal/api"
	"github.com/dave-evans-pawapay/deposit-service/internal/app"
	"github.com/dave-evans-pawapay/deposit-service/internal/config"
	"github.com/dave-evans-pawapay/deposit-service/pkg/pawapay"
)

func main() {
	// Load application configuration from environment variables.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}
	if cfg.APIKey == "" {
		log.Fatalf("level=fatal component=bootstrap msg=\"pawapay api key must be configured\" env=API_KEY")
	}
	if cfg.APIURL == "" {
		log.Fatalf("level=fatal component=bootstrap msg=\"pawapay api url must be configured\" env=API_URL")
	}

	log.Printf("level=info component=bootstrap msg=\"starting deposit-service\" port=%s gateway=%s", cfg.ServerPort, cfg.APIURL)

	// Initialize the client for the pawaPay API.
	gatewayClient := pawapay.NewClient(cfg.APIURL, cfg.APIKey, time.Duration(cfg.GatewayTimeoutSeconds)*time.Second)

	// Initialize the core application service with its dependencies.
	depositService := app.NewService(gatewayClient)

	// Initialize the API handlers and router.
	depositHandlers := api.NewDepositHandlers(depositService)
	router := api.DepositRoutes(depositHandlers)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
