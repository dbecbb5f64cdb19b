package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	prometheusotel "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"lexipipe/internal/config"
	"lexipipe/internal/detect"
	"lexipipe/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := context.Background()

	configPath := flag.String("config", "", "Path to a TOML or YAML config file")
	listen := flag.String("listen", "", "Override the listen address (e.g. :8080)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	if envListen := os.Getenv("LEXIPIPE_LISTEN"); envListen != "" && *listen == "" {
		cfg.Server.Listen = envListen
	}

	pipeCfg, err := cfg.ToPipeline()
	if err != nil {
		logger.Error("failed to resolve pipeline config", "error", err)
		os.Exit(1)
	}
	pipeCfg.Logger = logger

	pipe, err := pipeline.New(pipeCfg)
	if err != nil {
		logger.Error("failed to build tokenization pipeline", "error", err)
		os.Exit(1)
	}

	telemetry := newTelemetry(ctx, logger, cfg.Metrics.Enabled != nil && *cfg.Metrics.Enabled)
	server := newAPIServer(pipe, telemetry, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/tokenize", server.handleTokenize)
	mux.HandleFunc("/v1/pipeline", server.handlePipeline)
	mux.HandleFunc("/v1/health", server.handleHealth)
	mux.HandleFunc("/v1/ready", server.handleReadiness)
	if telemetry.enabled {
		mux.HandleFunc("/v1/metrics", telemetry.handleMetrics)
	}

	handler := withJSONHeaders(mux)
	handler = withTelemetry(handler, telemetry, cfg.Logging.RequestLogs == nil || *cfg.Logging.RequestLogs)

	logger.Info("lexipipe API listening", "listen", cfg.Server.Listen,
		"scripts", len(pipe.EnabledScripts()), "normalizers", pipe.NormalizerFamilies())
	if err := http.ListenAndServe(cfg.Server.Listen, handler); err != nil {
		logger.Error("server stopped", "error", err)
	}
}

func withJSONHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type telemetry struct {
	enabled bool
	logger  *slog.Logger

	registry       *prometheus.Registry
	metricsHandler http.Handler
	meter          metric.Meter

	reqCount   atomic.Int64
	errCount   atomic.Int64
	lastStatus atomic.Int64

	httpRequests    metric.Int64Counter
	httpErrors      metric.Int64Counter
	httpLatency     metric.Float64Histogram
	tokenizeOps     metric.Int64Counter
	tokensProduced  metric.Int64Counter
	tokenizeLatency metric.Float64Histogram

	runsByScript *prometheus.CounterVec
}

func newTelemetry(ctx context.Context, logger *slog.Logger, enabled bool) *telemetry {
	telemetry := &telemetry{enabled: enabled, logger: logger}
	if !enabled {
		return telemetry
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	exporter, err := prometheusotel.New(prometheusotel.WithRegisterer(registry))
	if err != nil {
		logger.Error("failed to initialize prometheus exporter", "error", err)
		return telemetry
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter("lexipipe")

	httpReq, _ := meter.Int64Counter("http_requests_total", metric.WithDescription("Total HTTP requests"))
	httpErr, _ := meter.Int64Counter("http_errors_total", metric.WithDescription("HTTP requests that returned an error status"))
	httpLatency, _ := meter.Float64Histogram("http_request_duration_ms", metric.WithDescription("Latency of HTTP requests in milliseconds"), metric.WithUnit("ms"))
	tokenizeOps, _ := meter.Int64Counter("tokenize_requests_total", metric.WithDescription("Tokenization operations executed"))
	tokensProduced, _ := meter.Int64Counter("tokens_produced_total", metric.WithDescription("Normalized tokens yielded by the pipeline"))
	tokenizeLatency, _ := meter.Float64Histogram("tokenize_latency_ms", metric.WithDescription("Latency of tokenization operations"), metric.WithUnit("ms"))

	runsByScript := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "lexipipe", Name: "script_runs_total", Help: "Script runs classified, per script"}, []string{"script"})
	registry.MustRegister(runsByScript)

	telemetry.registry = registry
	telemetry.metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	telemetry.meter = meter
	telemetry.httpRequests = httpReq
	telemetry.httpErrors = httpErr
	telemetry.httpLatency = httpLatency
	telemetry.tokenizeOps = tokenizeOps
	telemetry.tokensProduced = tokensProduced
	telemetry.tokenizeLatency = tokenizeLatency
	telemetry.runsByScript = runsByScript

	telemetry.logger.Info("telemetry initialized", "prometheus", true)
	telemetry.httpRequests.Add(ctx, 0) // ensure metric is created eagerly
	return telemetry
}

func (t *telemetry) recordRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	t.reqCount.Add(1)
	t.lastStatus.Store(int64(status))
	if status >= http.StatusBadRequest {
		t.errCount.Add(1)
	}
	if !t.enabled {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("status", status),
	)
	t.httpRequests.Add(ctx, 1, attrs)
	t.httpLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
	if status >= http.StatusBadRequest {
		t.httpErrors.Add(ctx, 1, attrs)
	}
}

func (t *telemetry) recordTokenize(ctx context.Context, tokens int, scripts map[string]int, duration time.Duration) {
	if !t.enabled {
		return
	}

	t.tokenizeOps.Add(ctx, 1)
	t.tokensProduced.Add(ctx, int64(tokens))
	t.tokenizeLatency.Record(ctx, float64(duration.Milliseconds()))
	for script, count := range scripts {
		t.runsByScript.WithLabelValues(script).Add(float64(count))
	}
}

func (t *telemetry) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !t.enabled || t.registry == nil {
		respond(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}

	t.metricsHandler.ServeHTTP(w, r)
}

func withTelemetry(next http.Handler, telemetry *telemetry, logRequests bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		start := time.Now()
		next.ServeHTTP(recorder, r)
		duration := time.Since(start)

		if telemetry != nil {
			telemetry.recordRequest(r.Context(), r.Method, r.URL.Path, recorder.status, duration)
		}
		if logRequests && telemetry != nil && telemetry.logger != nil {
			telemetry.logger.Info("request completed", "requestId", requestID, "method", r.Method,
				"path", r.URL.Path, "status", recorder.status, "duration_ms", duration.Milliseconds())
		}
	})
}

type apiServer struct {
	pipe      *pipeline.Pipeline
	telemetry *telemetry
	logger    *slog.Logger
	ready     atomic.Bool
}

func newAPIServer(pipe *pipeline.Pipeline, telemetry *telemetry, logger *slog.Logger) *apiServer {
	server := &apiServer{
		pipe:      pipe,
		telemetry: telemetry,
		logger:    logger,
	}
	server.ready.Store(true)
	return server
}

type tokenizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

func (s *apiServer) handleTokenize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req tokenizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json payload", start)
		return
	}

	pipe := s.pipe
	if req.Language != "" {
		// Forced dispatch for this request only; the hinted pipeline shares
		// every loaded backend with the long-lived one.
		pipe = s.pipe.WithLanguageHint(detect.Language(req.Language))
	}

	tokens, err := pipe.Tokens(req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), start)
		return
	}

	scripts := make(map[string]int)
	for _, t := range tokens {
		scripts[t.Script.String()]++
	}
	s.telemetry.recordTokenize(r.Context(), len(tokens), scripts, time.Since(start))

	respond(w, http.StatusOK, map[string]any{
		"tokens":   tokens,
		"count":    len(tokens),
		"timingMs": time.Since(start).Milliseconds(),
	})

	if s.logger != nil {
		s.logger.Info("tokenize request processed", "bytes", len(req.Text), "tokens", len(tokens),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *apiServer) handlePipeline(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"enabledScripts":     s.pipe.EnabledScripts(),
		"normalizerFamilies": s.pipe.NormalizerFamilies(),
		"timingMs":           time.Since(start).Milliseconds(),
	})
}

func (s *apiServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respond(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"requests":   s.telemetry.reqCount.Load(),
		"errors":     s.telemetry.errCount.Load(),
		"lastStatus": s.telemetry.lastStatus.Load(),
		"timingMs":   time.Since(start).Milliseconds(),
	})
}

func (s *apiServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	ready := s.ready.Load()

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respond(w, status, map[string]any{
		"status":   map[bool]string{true: "ready", false: "initializing"}[ready],
		"timingMs": time.Since(start).Milliseconds(),
	})
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, start time.Time) {
	respond(w, status, map[string]any{"error": message, "timingMs": time.Since(start).Milliseconds()})
}
