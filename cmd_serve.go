package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	admin "foodexchange-admin/internal/adminService"
	"foodexchange-admin/internal/config"
	"foodexchange-admin/internal/connections"
	"foodexchange-admin/internal/marketapi"
	"foodexchange-admin/internal/server"
	"foodexchange-admin/internal/session"
	"foodexchange-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin gateway HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file (optional)")
}

const purgeInterval = 15 * time.Minute

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	timeout, _ := cfg.MarketTimeout()
	ttl, _ := cfg.SessionTTL()

	store, err := session.OpenSQLite(cfg.Session.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var source connections.StatusSource = connections.FixedSource{}
	if cfg.Directory.StatusSource == "random" {
		source = connections.NewRandomSource(cfg.Directory.Seed)
	}

	client := marketapi.NewClient(cfg.Market.BaseURL, timeout)
	adminSvc := admin.NewAdminService(client, store, session.NewAuthenticator(cfg.Auth.Accounts), connections.NewMemoryStore(), admin.Options{
		PageSize:           cfg.Directory.PageSize,
		MaxParallelFetches: cfg.Market.MaxParallelFetches,
		MaxImageBytes:      cfg.Feed.MaxImageBytes,
		SessionTTL:         ttl,
		StatusSource:       source,
	})

	gin.SetMode(gin.ReleaseMode)
	router := server.SetupRouter(adminSvc, store, server.Options{
		CookieName:     cfg.Session.CookieName,
		SessionTTL:     ttl,
		MaxUploadBytes: cfg.Feed.MaxImageBytes,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go purgeSessions(ctx, store)

	srv := &http.Server{Addr: cfg.Server.Port, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		utils.Info("starting admin gateway", map[string]any{
			"addr":       cfg.Server.Port,
			"market_api": client.BaseURL(),
			"accounts":   len(cfg.Auth.Accounts),
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	utils.Info("shutting down admin gateway", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// purgeSessions drops expired sessions until ctx is done
func purgeSessions(ctx context.Context, store session.Store) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				utils.Warn("session purge failed", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				utils.Info("expired sessions purged", map[string]any{"count": n})
			}
		}
	}
}
