package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"DebitNoteEngine/internal/appmanager"
)

func main() {
	// Load .env for local dev
	_ = godotenv.Load(".env")

	manager := appmanager.NewAppManager()

	servicesCfg, err := appmanager.LoadServiceSequence(servicesPath())
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}
	manager.AutoRegisterServices(servicesCfg)

	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}

func servicesPath() string {
	if p := os.Getenv("SERVICES_CONFIG"); p != "" {
		return p
	}
	return "services.yaml"
}
