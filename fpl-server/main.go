package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/aatrey56/fpl-monthly-standings/internal/config"
	"github.com/aatrey56/fpl-monthly-standings/internal/fetch"
	"github.com/aatrey56/fpl-monthly-standings/internal/logger"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	env, err := config.Load()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("load config")
	}

	var (
		addr      = flag.String("addr", env.Addr, "HTTP listen address")
		mcpPath   = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		baseURL   = flag.String("base-url", env.BaseURL, "FPL API base URL")
		leagueID  = flag.Int("league", env.LeagueID, "default classic league id")
		mode      = flag.String("mode", string(env.IdentityMode), "manager identity: name|team")
		title     = flag.String("title", env.Title, "dashboard title override")
		rps       = flag.Float64("rps", env.RequestsPerSecond, "max upstream requests per second (0 = unpaced)")
		logLevel  = flag.String("log-level", env.LogLevel, "log level")
		logFormat = flag.String("log-format", env.LogFormat, "log format: text|json")
	)
	flag.Parse()

	log := logger.New(*logLevel, *logFormat)
	identity, err := model.ParseIdentityMode(*mode)
	if err != nil {
		log.WithError(err).Fatal("invalid -mode")
	}

	client := fetch.NewClient(store.NewRunCache())
	client.BaseURL = *baseURL
	client.UserAgent = env.UserAgent
	client.HTTP.Timeout = env.HTTPTimeout
	client.MaxStandingsPages = env.MaxStandingsPages
	client.Log = log
	client.SetRate(*rps)

	cfg := ServerConfig{
		Client:   client,
		LeagueID: *leagueID,
		Mode:     identity,
		Title:    *title,
		Log:      log,
	}

	server, registry := newMCPServer(cfg)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(cfg, server, registry, *mcpPath, env.CORSAllowOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithFields(map[string]any{
		"addr":      *addr,
		"mcp_path":  *mcpPath,
		"league_id": *leagueID,
		"mode":      identity,
	}).Info("fpl-monthly-standings server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("http server")
	}
}
