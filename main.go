// Device Lookup Server - resolves vendor device identifiers to model names
// Scrapes vendor support sites or infers from serial number structure
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	kservice "github.com/kardianos/service"

	"github.com/adminvv/inventory-lookup-api/handlers"
	"github.com/adminvv/inventory-lookup-api/logger"
	"github.com/adminvv/inventory-lookup-api/storage"
)

// Version information (set at build time via -ldflags)
var (
	Version   = "dev"     // Semantic version (e.g., "0.1.0")
	BuildTime = "unknown" // Build timestamp
	GitCommit = "unknown" // Git commit hash
)

var (
	serverLogger *logger.Logger
	serverStore  storage.Store
)

// flagOverrides carries command line values that take precedence over the
// config file. Only flags the user actually set are applied.
type flagOverrides struct {
	configPath string
	port       int
	portSet    bool
	bind       string
	bindSet    bool
	dbPath     string
	dbSet      bool
	logLevel   string
	logSet     bool
}

var overrides flagOverrides

func main() {
	flag.StringVar(&overrides.configPath, "config", "", "Config file path (default: platform search paths)")
	flag.IntVar(&overrides.port, "port", 5000, "HTTP port for lookup API")
	flag.StringVar(&overrides.bind, "bind", "0.0.0.0", "Bind address")
	flag.StringVar(&overrides.dbPath, "db", "", "History database path (default: platform-specific)")
	flag.StringVar(&overrides.logLevel, "log-level", "info", "Log level (error, warn, info, debug, trace)")
	generateConfig := flag.String("generate-config", "", "Generate default config file at path and exit")
	serviceCmd := flag.String("service", "", "Service control: install, uninstall, start, stop, run")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			overrides.portSet = true
		case "bind":
			overrides.bindSet = true
		case "db":
			overrides.dbSet = true
		case "log-level":
			overrides.logSet = true
		}
	})

	if *showVersion {
		fmt.Printf("Device Lookup Server %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Go Version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return
	}

	if *generateConfig != "" {
		if err := WriteDefaultConfig(*generateConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at %s\n", *generateConfig)
		return
	}

	if *serviceCmd != "" {
		handleServiceCommand(*serviceCmd)
		return
	}

	if !kservice.Interactive() {
		runAsService()
		return
	}

	// Running interactively: shut down on Ctrl+C or SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runServer(ctx)
}

// runServer starts the lookup server and blocks until ctx is cancelled or the
// listener fails. Used both interactively and from the service wrapper.
func runServer(ctx context.Context) {
	cfg, err := LoadConfig(overrides.configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if overrides.portSet {
		cfg.Server.Port = overrides.port
	}
	if overrides.bindSet {
		cfg.Server.BindAddress = overrides.bind
	}
	if overrides.dbSet {
		cfg.Database.Path = overrides.dbPath
	}
	if overrides.logSet {
		cfg.Logging.Level = overrides.logLevel
	}

	log.Printf("Device Lookup Server %s", Version)
	log.Printf("Build: %s, Commit: %s", BuildTime, GitCommit)
	log.Printf("Go: %s, OS: %s, Arch: %s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	logDir := cfg.Logging.Directory
	if logDir == "" {
		logDir = filepath.Join(filepath.Dir(storage.GetDefaultDBPath()), "logs")
	}
	serverLogger = logger.New(logger.ParseLevel(cfg.Logging.Level), logDir, 1000)
	serverLogger.SetConsoleOutput(cfg.Logging.Console)
	logger.Global = serverLogger
	defer serverLogger.Close()

	serverLogger.Info("Server starting", "version", Version)

	var history handlers.HistoryStore
	if !cfg.Server.HistoryOff {
		driver := storage.ChooseDriver(cfg.Database)
		serverStore, err = storage.Open(driver)
		if err != nil {
			serverLogger.Error("Failed to open history database", "error", err)
			log.Fatal(err)
		}
		defer serverStore.Close()
		history = serverStore
		serverLogger.Info("History database ready", "driver", driver.Name)
	} else {
		serverLogger.Info("Lookup history disabled")
	}

	mux := http.NewServeMux()
	setupRoutes(mux, history)

	addr := fmt.Sprintf("%s:%d", cfg.Server.BindAddress, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", addr)
		serverLogger.Info("Server listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		serverLogger.Info("Shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			serverLogger.Error("Shutdown error", "error", err)
		}
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Error("Server failed", "error", err)
			log.Fatal(err)
		}
	}

	serverLogger.Info("Server stopped")
}

func setupRoutes(mux *http.ServeMux, history handlers.HistoryStore) {
	handlers.NewLookupAPI(history).RegisterRoutes(mux)
	handlers.NewHistoryAPI(history).RegisterRoutes(mux)
	handlers.NewHealthAPI(handlers.HealthAPIOptions{
		Version:      Version,
		BuildTime:    BuildTime,
		GitCommit:    GitCommit,
		ProcessStart: time.Now(),
	}).RegisterRoutes(mux)

	mux.HandleFunc("/", handleIndex)
}
