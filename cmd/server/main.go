// Package main implements the entry point for the Mufradat API server,
// which manages users' Arabic vocabulary flashcards and clones the curated
// template decks into their workspaces.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the mufradat-api server. It initializes
// configuration, logging, the database connection, and the dependency graph,
// then runs the HTTP server until shutdown.
func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	app, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
