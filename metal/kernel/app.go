package kernel

import (
	"fmt"
	baseHttp "net/http"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/llogs"
	"github.com/Matias-sh/mi-portafolio/pkg/middleware"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	cache     cache.Store
	tracer    *portal.TracerProvider
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	logs := MakeLogs(env)

	tracer, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the tracer provider: %w", err)
	}

	store, err := MakeCache(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the cache: %w", err)
	}

	app := App{
		env:       env,
		validator: validator,
		logs:      logs,
		sentry:    MakeSentry(env),
		db:        MakeDbConnection(env),
		cache:     store,
		tracer:    tracer,
	}

	router, err := NewRouter(env, app.db, store, validator)
	if err != nil {
		return nil, err
	}

	app.SetRouter(*router)

	return &app, nil
}

// NewRouter builds the mux and the shared pipeline without registering any
// route; Boot does that.
func NewRouter(env *env.Environment, db *database.Connection, store cache.Store, validator *portal.Validator) (*Router, error) {
	jwtHandler, err := MakeJWT(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	clientIP, err := portal.NewClientIPResolver(env.Network.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	throttle := middleware.NewContactThrottle()
	throttle.ClientIP = clientIP

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not register metrics: %w", err)
	}

	return &Router{
		Env:      env,
		Db:       db,
		Cache:    store,
		Notifier: MakeNotifier(env),
		JWT:      jwtHandler,
		Gatherer: registry,
		ClientIP: clientIP,
		Mux:      baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:      env,
			Metrics:  metrics,
			JWT:      middleware.JWTMiddleware{Handler: jwtHandler},
			Throttle: throttle,
		},
		validator: validator,
	}, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	a.router.Boot()
}

func (r *Router) Boot() {
	r.Profile()
	r.Skills()
	r.Experience()
	r.Projects()
	r.Certifications()
	r.Contact()
	r.Health()
	r.WriteUps()
	r.Metrics()
	r.Admin()
}

// Handler is the root http.Handler served by main.
func (a *App) Handler() baseHttp.Handler {
	var wrap func(baseHttp.Handler) baseHttp.Handler

	if a.sentry != nil {
		wrap = a.sentry.Handler.Handle
	}

	return endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          a.GetMux(),
		IsProduction: a.IsProduction(),
		Compress:     true,
		Wrap:         wrap,
	})
}
