package main

import (
	"log"

	"github.com/joho/godotenv"

	"resumeshot-backend/internal/config"
	"resumeshot-backend/internal/db"
	"resumeshot-backend/internal/model"
	"resumeshot-backend/internal/server"
)

var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	srv, err := server.New(cfg, gitSHA, buildTime)
	if err != nil {
		log.Fatalf("server init error: %v", err)
	}

	addr := ":" + cfg.Port

	errCh := make(chan error, 1)

	go func() {
		log.Printf("starting server on %s", addr)
		errCh <- srv.Start(addr)
	}()

	// The attempt ledger is optional: attach it once the DB is reachable and
	// keep serving either way.
	go func() {
		if !cfg.HasDB() {
			log.Printf("no ledger DB configured; generation ledger disabled")
			return
		}
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Printf("db connect error: %v", err)
			return
		}
		if err := conn.AutoMigrate(&model.GenerationRecord{}); err != nil {
			log.Printf("auto migrate error: %v", err)
		}
		srv.SetDB(conn)
		log.Printf("generation ledger attached")
	}()

	if err := <-errCh; err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
