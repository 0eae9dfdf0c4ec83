package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirsardor-ktng/documint/internal/server"
	"github.com/mirsardor-ktng/documint/pkg/conventions"
	"github.com/mirsardor-ktng/documint/pkg/orchestrator"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the template upload and fill web workflow",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides DOCUMINT_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	var opts []orchestrator.Option
	path := profilePath
	if path == "" {
		path = cfg.ProfilePath
	}
	if path != "" {
		profile, err := conventions.Load(path)
		if err != nil {
			return err
		}
		opts = append(opts, orchestrator.WithProfile(profile))
	}

	srv := server.New(cfg, orchestrator.New(opts...), logger)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Routes(),
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		httpServer.Close()
	}()

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
