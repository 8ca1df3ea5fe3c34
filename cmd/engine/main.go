// cmd/engine/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ethics-workflow/internal/apiclient"
	"ethics-workflow/internal/common/config"
	"ethics-workflow/internal/common/logger"
	"ethics-workflow/internal/common/session"
	"ethics-workflow/internal/model"
	"ethics-workflow/internal/template/convert"
	"ethics-workflow/internal/template/templatectx"
	"ethics-workflow/internal/view"
	"ethics-workflow/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// validateTemplateRender mounts a full renderer tree for the template
// against an empty draft, so a missing renderer or a malformed component
// fails at startup rather than mid-session.
func validateTemplateRender(templateID string, tplCtx *templatectx.Context, renderers *view.RendererRegistry) error {
	tpl := tplCtx.Template(templateID)
	if tpl == nil {
		return fmt.Errorf("template %q not loaded", templateID)
	}

	in, err := model.NewInitialiser(model.StatusDraft)
	if err != nil {
		return err
	}
	if err := in.Set(model.FieldApplicationID, "render-validation"); err != nil {
		return err
	}
	if err := in.Set(model.FieldTemplate, tpl); err != nil {
		return err
	}
	app := in.Build()

	loader := view.NewLoader(renderers)
	defer loader.Destroy()

	shape := &view.ViewShape{
		Application:     app,
		Form:            view.NewForm(),
		Context:         &view.DisplayContext{},
		Autosave:        view.NewAutosaveCoordinator(),
		Autofill:        view.NewAutofillNotifier(),
		Loader:          loader,
		TemplateContext: tplCtx,
	}
	for _, comp := range tpl.Components {
		compShape := *shape
		compShape.Component = comp
		if _, err := loader.Load("validation:"+templateID, &compShape); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting template engine...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	ctx := context.Background()

	// --- Converter and renderer registries, complete or not at all ---
	converters, err := convert.NewDefaultRegistry()
	if err != nil {
		zapLog.Fatal("converter registry incomplete", zap.Error(err))
	}
	renderers, err := view.NewDefaultRendererRegistry()
	if err != nil {
		zapLog.Fatal("renderer registry incomplete", zap.Error(err))
	}

	// --- Session store with retry ---
	sessionID := uuid.NewString()
	var store *session.Store
	err = retryWithBackoff(func() error {
		var err error
		store, err = session.New(ctx, cfg.Redis, sessionID)
		return err
	}, 10, 2*time.Second, zapLog, "Redis session store initialization")
	if err != nil {
		zapLog.Fatal("session store failed after retries", zap.Error(err))
	}
	defer store.Close()
	zapLog.Info("Session store connected", zap.String("sessionId", sessionID))

	// --- Template catalog preload ---
	catalog, err := registry.LoadCatalog(cfg.Templates.CatalogPath)
	if err != nil {
		zapLog.Fatal("template catalog load failed", zap.Error(err))
	}

	tplCtx := templatectx.New()
	for i := range catalog.Templates {
		desc := &catalog.Templates[i]
		raw, err := catalog.ReadTemplateJSON(cfg.Templates.Dir, desc)
		if err != nil {
			zapLog.Fatal("template file read failed",
				zap.String("template", desc.ID), zap.Error(err))
		}
		tpl, err := converters.ParseTemplate(raw)
		if err != nil {
			zapLog.Fatal("template parse failed",
				zap.String("template", desc.ID), zap.Error(err))
		}
		tplCtx.AddTemplate(tpl)
		zapLog.Info("Template loaded",
			zap.String("id", tpl.ID),
			zap.String("name", tpl.Name),
			zap.String("version", tpl.Version),
		)
	}
	if def, err := catalog.DefaultTemplate(); err == nil {
		tplCtx.SetCurrent(def.ID)
	}

	// --- Dry-run render: every loaded template must be renderable ---
	for _, tpl := range tplCtx.Templates() {
		if err := validateTemplateRender(tpl.ID, tplCtx, renderers); err != nil {
			zapLog.Fatal("template failed render validation",
				zap.String("template", tpl.ID), zap.Error(err))
		}
	}

	// --- Backend client ---
	client := apiclient.New(cfg.API, log)
	resolver := apiclient.NewResolver(client, converters, log)

	// --- Restore the session's current application, if any ---
	if appID := store.CurrentApplication(); appID != "" {
		fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		payload, err := client.GetApplication(fetchCtx, appID)
		if err == nil {
			_, err = resolver.ResolveApplication(fetchCtx, payload)
		}
		cancel()
		if err != nil {
			zapLog.Warn("could not restore current application",
				zap.String("applicationId", appID), zap.Error(err))
		} else {
			zapLog.Info("Restored current application", zap.String("applicationId", appID))
		}
	}

	// --- Metrics endpoint ---
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.Metrics.Address, Handler: mux}
		go func() {
			zapLog.Info("Metrics endpoint listening", zap.String("address", cfg.Metrics.Address))
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	zapLog.Info("Engine ready",
		zap.Int("templates", len(catalog.Templates)),
	)

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	zapLog.Info("Shutting down...", zap.String("signal", sig.String()))

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("metrics server shutdown failed", zap.Error(err))
		}
	}
	tplCtx.Clear()
	zapLog.Info("Engine stopped")
}
