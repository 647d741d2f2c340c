package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"lovepet/internal/bootstrap"
	"lovepet/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	configPath := flag.String("config", resolveConfigPath(), "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	app, err := bootstrap.Build(context.Background(), cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer app.Close()

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	app.HTTPHandler().RegisterRoutes(s)

	app.Logger.Info("lovepet server listening", "addr", cfg.Server.Addr, "default_pet", cfg.Pet.ID)
	s.Spin()
	return nil
}

// resolveConfigPath prefers LOVEPET_CONFIG, then lovepet.yaml in the working
// directory. An empty result runs on defaults and env overrides.
func resolveConfigPath() string {
	if v := strings.TrimSpace(os.Getenv("LOVEPET_CONFIG")); v != "" {
		return v
	}
	if _, err := os.Stat("lovepet.yaml"); err == nil {
		return "lovepet.yaml"
	}
	return ""
}
