package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/aatrey56/fpl-monthly-standings/internal/render"
)

func newRouter(cfg ServerConfig, server *mcp.Server, registry []toolInfo, mcpPath string, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Get("/", dashboardPage(cfg))
		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.New(cors.Options{
				AllowedOrigins: corsOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			}).Handler)
			r.Get("/dashboard", dashboardJSON(cfg))
		})
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
	r.Handle(mcpPath, handler)

	return r
}

// queryArgs reads league, mode and title from the query string.
func queryArgs(r *http.Request) (DashboardArgs, error) {
	q := r.URL.Query()
	args := DashboardArgs{Mode: q.Get("mode"), Title: q.Get("title")}
	if s := strings.TrimSpace(q.Get("league")); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil || id <= 0 {
			return DashboardArgs{}, fmt.Errorf("invalid league id %q", s)
		}
		args.LeagueID = id
	}
	return args, nil
}

func dashboardPage(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args, err := queryArgs(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		d, err := buildDashboard(r.Context(), cfg, args)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var buf bytes.Buffer
		if err := render.HTML(&buf, d); err != nil {
			cfg.Log.WithError(err).Error("render dashboard")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func dashboardJSON(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		args, err := queryArgs(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		d, err := buildDashboard(r.Context(), cfg, args)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		b, _ := json.MarshalIndent(d, "", "  ")
		w.Write(b)
	}
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	w.Write(b)
}

func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			}).Debug("http request")
		})
	}
}
