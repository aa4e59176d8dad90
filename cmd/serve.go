package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/llm"
	"github.com/vedantvaibhav/Lumus/internal/orchestrator"
	"github.com/vedantvaibhav/Lumus/internal/reader"
	"github.com/vedantvaibhav/Lumus/internal/server"
	"github.com/vedantvaibhav/Lumus/internal/store"
	"github.com/vedantvaibhav/Lumus/internal/synth"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, log, err := loadApp()
		if err != nil {
			return err
		}
		defer log.Sync()

		if addr == "" {
			addr = cfg.ServerAddr
		}

		llmCfg, err := cfg.LLM()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var history *store.Store
		if cfg.SaveHistory {
			dbPath, err := resolveDBPath(cmd, cfg)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			history, err = store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer history.Close()
		}

		var requestLog llm.RequestLog
		if history != nil {
			requestLog = history
		}
		provider, err := llm.NewProvider(ctx, llmCfg, requestLog)
		if err != nil {
			return fmt.Errorf("init model provider: %w", err)
		}

		o := orchestrator.New(
			reader.New(log),
			synth.New(provider, synth.DefaultConfig(), log),
			historyOrNil(history),
			log,
		)
		ts := synth.NewTopicSynthesizer(provider, nil, log)

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.New(o, ts, log).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server listening", zap.String("addr", addr), zap.String("model", provider.ModelID()))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
