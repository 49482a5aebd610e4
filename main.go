package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/drawlab/server/cliparse"
	"github.com/drawlab/server/db"
	"github.com/drawlab/server/middleware"
	"github.com/drawlab/server/router"
	"github.com/drawlab/server/stimuli"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the participant record store
	dbConn, err := sql.Open(cliparse.DriverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the stimuli set for the /stimuli endpoint. The server can still
	// serve pre-generated configs without it.
	set, err := stimuli.LoadSet(cfg.StimuliDir, cfg.StimuliSet)
	if err != nil {
		slog.Warn("stimuli set not loaded", "error", err)
		set = nil
	} else {
		slog.Info("Stimuli set loaded", "name", cfg.StimuliSet, "conditions", set.Conditions())
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, set)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "config_dir", cfg.ConfigDir)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
