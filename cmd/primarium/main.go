package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/primarium/primarium"
)

func main() {
	cfg, err := primarium.ConfigFromEnv()
	if err != nil {
		log.Fatalf("primarium: config: %v", err)
	}

	app := primarium.New(cfg)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		app.Close()
		os.Exit(0)
	}()

	if err := app.Start(); err != nil {
		log.Fatalf("primarium: %v", err)
	}
}
