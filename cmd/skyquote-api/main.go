// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skyquote/internal/ai"
	"skyquote/internal/config"
	httptransport "skyquote/internal/http"
	"skyquote/internal/logger"
	"skyquote/internal/metrics"
	"skyquote/internal/modules/catalog"
	"skyquote/internal/modules/dialogue"
	"skyquote/internal/modules/extract"
	"skyquote/internal/modules/pricing"
	"skyquote/internal/modules/session"
)

func main() {
	log := logger.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := loadCatalog(ctx, cfg, log)
	m := metrics.New("skyquote")

	rules := extract.NewRuleExtractor(cat)
	var model ai.IntentExtractor
	extractorModel := ""
	if cfg.Extract.GeminiKey != "" {
		gemini, err := ai.NewGeminiExtractor(ctx, cfg.Extract.GeminiKey)
		if err != nil {
			// The collaborator is optional; run rule-based only.
			log.Warn("gemini init failed, using rule-based extraction only", "error", err)
		} else {
			defer gemini.Close()
			model = gemini
			extractorModel = gemini.ModelName()
		}
	}
	extractor := extract.NewFallbackExtractor(model, rules, cfg.Extract.Timeout, log)
	extractor.OnFallback = m.ExtractorFallbacks.Inc

	store := session.NewMemoryStore(cfg.Session.HistorySize)
	tracker := session.NewTracker(cat)
	engine := pricing.NewEngine(cat)
	dialogueSvc := dialogue.NewService(extractor, store, tracker, engine, log, m)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:        cat,
		Engine:         engine,
		Dialogue:       dialogueSvc,
		ExtractorModel: extractorModel,
		Log:            log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("listening", "addr", cfg.HTTP.Addr,
		"airports", cat.AirportCount(), "aircraft_classes", cat.AircraftCount(),
		"extractor_configured", extractorModel != "")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed", "error", err)
	}
}

// loadCatalog prefers the configured Postgres reference data and falls back
// to the embedded seed; a broken catalog DB must not keep the service down.
func loadCatalog(ctx context.Context, cfg config.Config, log logger.Logger) *catalog.Catalog {
	if cfg.DB.DSN == "" {
		return catalog.NewSeeded()
	}
	pool, err := catalog.Open(ctx, cfg.DB.DSN)
	if err != nil {
		log.Warn("catalog db unavailable, using embedded seed", "error", err)
		return catalog.NewSeeded()
	}
	defer pool.Close()

	cat, err := catalog.LoadFromDB(ctx, pool)
	if err != nil {
		log.Warn("catalog load failed, using embedded seed", "error", err)
		return catalog.NewSeeded()
	}
	return cat
}
