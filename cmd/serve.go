package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/advice"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/matcher"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/plan"
	"github.com/tapiwanashenyerenyere-afk/Career-Craft-V7/internal/taxonomy"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate(); err != nil {
			return err
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		chain := newChain(cfg)

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/v1/taxonomy", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, catalog)
		})

		r.Post("/v1/match", handleMatch(catalog))
		r.Post("/v1/plan", handlePlan(catalog))
		r.Post("/v1/advice", handleAdvice(chain))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// matchRequest is the body for POST /v1/match and /v1/plan.
type matchRequest struct {
	Skills map[string]int `json:"skills"`
	Top    int            `json:"top,omitempty"`
}

func handleMatch(catalog *taxonomy.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		results := matcher.Match(req.Skills, catalog)
		if req.Top > 0 && len(results) > req.Top {
			results = results[:req.Top]
		}

		// An empty answer set is a displayable state, not an error.
		writeJSON(w, http.StatusOK, map[string]any{"matches": results})
	}
}

func handlePlan(catalog *taxonomy.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		results := matcher.Match(req.Skills, catalog)
		if len(results) == 0 {
			writeJSON(w, http.StatusOK, map[string]any{"plan": nil})
			return
		}

		p := plan.Synthesize(results[0], matcher.TopStrengths(req.Skills, catalog, 2))
		writeJSON(w, http.StatusOK, map[string]any{
			"top_match": results[0],
			"plan":      p,
		})
	}
}

// adviceRequest is the body for POST /v1/advice.
type adviceRequest struct {
	Question string         `json:"question"`
	Context  advice.Context `json:"context"`
}

func handleAdvice(chain *advice.Chain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Question == "" {
			http.Error(w, `{"error":"question is required"}`, http.StatusBadRequest)
			return
		}

		// The chain never fails; provenance tells the caller what it got.
		result := chain.Ask(r.Context(), req.Question, req.Context)
		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}
