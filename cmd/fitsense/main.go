package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayushi/fitsense/internal/detector"
	"github.com/ayushi/fitsense/internal/engine"
	"github.com/ayushi/fitsense/internal/server"
	"github.com/ayushi/fitsense/internal/store"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	fmt.Println("FitSense - Body Measurement & Size Recommendation")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".fitsense")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "fitsense.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Try MediaPipe first, fall back to landmark-only requests
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v); image uploads disabled, landmark input only", err)
	}

	eng := engine.New(engine.Config{Detector: det})
	defer eng.Close()

	srv := server.New(server.Config{
		Store:  st,
		Engine: eng,
	})

	fmt.Printf("Starting server on %s\n", *addr)
	if err := srv.ListenAndServe(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
