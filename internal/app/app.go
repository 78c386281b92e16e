// Package app содержит основную структуру приложения и логику инициализации.
// Собирает сервис, обработчики и middleware в единый HTTP роутер.
package app

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/InQaaaaGit/gcd_form.git/internal/config"
	"github.com/InQaaaaGit/gcd_form.git/internal/handler"
	"github.com/InQaaaaGit/gcd_form.git/internal/middleware"
	"github.com/InQaaaaGit/gcd_form.git/internal/service"
)

// App представляет приложение сервиса вычисления НОД.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config   *config.Config       // Конфигурация приложения
	router   *chi.Mux             // HTTP роутер для обработки запросов
	logger   *zap.Logger          // Логгер для записи событий приложения
	handler  *handler.Handler     // Обработчики HTTP запросов
	registry *prometheus.Registry // Реестр метрик, отдаваемый на /metrics
	metrics  *middleware.Metrics
}

// NewApp создает приложение и настраивает маршруты.
//
// Параметры:
//   - cfg: конфигурация приложения
//   - logger: логгер, общий для всех слоев
//
// Возвращает ошибку, если не удалось зарегистрировать метрики.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, errors.Wrap(err, "registering go collector")
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, errors.Wrap(err, "registering process collector")
	}

	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, errors.Wrap(err, "registering http metrics")
	}

	gcdService := service.NewGcdService()

	a := &App{
		config:   cfg,
		router:   chi.NewRouter(),
		logger:   logger,
		handler:  handler.NewHandler(gcdService, logger),
		registry: registry,
		metrics:  metrics,
	}
	a.setupRoutes()

	return a, nil
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
func (a *App) setupRoutes() {
	// Middleware
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(chimiddleware.Recoverer)
	a.router.Use(a.metrics.Middleware)
	if a.config.IsRateLimitEnabled() {
		limiter := rate.NewLimiter(rate.Limit(a.config.RateLimit), a.config.RateBurst)
		a.router.Use(middleware.RateLimit(limiter))
	}
	a.router.Use(middleware.CompressMiddleware)

	// Routes
	a.router.Get("/", a.handler.HandleIndex)
	a.router.Post("/gcd", a.handler.HandleGCD)
	a.router.Get("/ping", a.handler.HandlePing)
	a.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{DisableCompression: true}))

	// Профилирование (доступно только при включенном флаге)
	if a.config.EnablePprof {
		a.router.Mount("/debug", chimiddleware.Profiler())
	}
}

// Router возвращает настроенный роутер приложения
func (a *App) Router() http.Handler {
	return a.router
}

// GetServer создает и возвращает настроенный HTTP сервер.
// Использует текущий роутер приложения как обработчик запросов.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
