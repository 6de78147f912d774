// Package main provides the pilot-auth cache warmer. Run it in CI
// ahead of a parallel test run so every worker starts from a warm
// authenticated session state instead of racing to log in.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/entrhq/pilot/pkg/auth"
	"github.com/entrhq/pilot/pkg/browser"
	"github.com/entrhq/pilot/pkg/config"
	"github.com/entrhq/pilot/pkg/logging"
	"github.com/entrhq/pilot/pkg/pages"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "pilot.yaml", "Path to the settings file")
	force := flag.Bool("force", false, "Invalidate any existing state and log in again")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pilot-auth v%s\n", version)
		return
	}

	if err := run(*configPath, *force); err != nil {
		fmt.Fprintf(os.Stderr, "pilot-auth: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, force bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is not configured (set it in %s or PILOT_BASE_URL)", configPath)
	}

	if cfg.LogDir != "" {
		logging.SetDirectory(cfg.LogDir)
	}
	logger, _ := logging.NewLogger("pilot-auth")
	defer logger.Close()

	// Stop cleanly on Ctrl-C; the deferred shutdown still closes the browser
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	manager := browser.NewManager()
	if err := manager.Initialize(); err != nil {
		return err
	}
	defer manager.Shutdown()

	cache := auth.NewCache(manager, auth.Options{
		Path:   cfg.StatePath,
		MaxAge: cfg.MaxStateAge,
		Session: browser.SessionOptions{
			Headless: cfg.Headless,
			Timeout:  cfg.TimeoutMs,
		},
		Logger: logger,
	})

	if force {
		cache.Invalidate()
	}

	state, err := cache.EnsureFresh(ctx, config.LoadCredentials(), pages.LoginProcedure(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("session state ready: %s (age %s)\n",
		state.Path, time.Since(state.ModTime).Round(time.Second))
	return nil
}
