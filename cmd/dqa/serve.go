package main

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/MalithGihan/dqa-service/internal/config"
	"github.com/MalithGihan/dqa-service/internal/quality"
	"github.com/MalithGihan/dqa-service/internal/server"
	"github.com/MalithGihan/dqa-service/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Port = p
	}

	st, err := store.New(cfg.DataRoot)
	if err != nil {
		return err
	}
	a := quality.New(quality.WithThresholds(cfg.Thresholds), quality.WithParallel(true))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(st, a, cfg.Debug).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("dqa-service listening on :%s", cfg.Port)
	debugf(cfg, "data root %s, thresholds %+v", cfg.DataRoot, cfg.Thresholds)
	return srv.ListenAndServe()
}

func debugf(cfg config.Config, format string, args ...any) {
	if cfg.Debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
