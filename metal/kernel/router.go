package kernel

import (
	baseHttp "net/http"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/handler"
	"github.com/Matias-sh/mi-portafolio/handler/admin"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/auth"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/mailer"
	"github.com/Matias-sh/mi-portafolio/pkg/middleware"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/prometheus/client_golang/prometheus"
)

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Db        *database.Connection
	Cache     cache.Store
	Notifier  mailer.Notifier
	JWT       auth.JWTHandler
	Gatherer  prometheus.Gatherer
	ClientIP  *portal.ClientIPResolver
	validator *portal.Validator
}

// PublicPipelineFor wraps apiHandler with the public middlewares and any
// extra ones, in order.
func (r *Router) PublicPipelineFor(route string, apiHandler endpoint.ApiHandler, extra ...endpoint.Middleware) baseHttp.HandlerFunc {
	stack := append(r.Pipeline.Public(route), extra...)

	return endpoint.NewApiHandler(r.Pipeline.Chain(apiHandler, stack...))
}

func (r *Router) AdminPipelineFor(route string, apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(r.Pipeline.Chain(apiHandler, r.Pipeline.Admin(route)...))
}

func (r *Router) get(route string, apiHandler endpoint.ApiHandler) {
	r.Mux.HandleFunc("GET "+route, r.PublicPipelineFor(route, apiHandler))
}

func (r *Router) Profile() {
	abstract := handler.NewProfileHandler(&repository.Profiles{DB: r.Db})

	r.get("/api/profile/{$}", abstract.Show)
}

func (r *Router) Skills() {
	abstract := handler.NewSkillsHandler(&repository.Skills{DB: r.Db})

	r.get("/api/skills/{$}", abstract.Index)
}

func (r *Router) Experience() {
	abstract := handler.NewExperienceHandler(&repository.Experiences{DB: r.Db})

	r.get("/api/experience/{$}", abstract.Index)
}

func (r *Router) Projects() {
	abstract := handler.NewProjectsHandler(&repository.Projects{DB: r.Db})

	r.get("/api/projects/{$}", abstract.Index)
	r.get("/api/projects/{slug}/{$}", abstract.Show)
}

func (r *Router) Certifications() {
	abstract := handler.NewCertificationsHandler(&repository.Certifications{DB: r.Db})

	r.get("/api/certifications/{$}", abstract.Index)
}

func (r *Router) Contact() {
	abstract := handler.NewContactHandler(&repository.ContactMessages{DB: r.Db}, r.Notifier, r.validator)
	abstract.ClientIP = r.ClientIP
	route := "/api/contact/{$}"

	r.Mux.HandleFunc("POST "+route, r.PublicPipelineFor(route, abstract.Store, r.Pipeline.Throttle.Handle))
}

func (r *Router) Health() {
	abstract := handler.NewHealthHandler(r.Db, r.Cache)

	r.get("/api/health/{$}", abstract.Handle)
}

// WriteUps registers the static sub-resources next to {slug}; the mux
// prefers the literal segments.
func (r *Router) WriteUps() {
	ttl := r.Env.Cache.TTL()

	writeups := handler.NewWriteUpsHandler(&repository.WriteUps{DB: r.Db}, r.Pipeline.Metrics)
	categories := handler.NewCategoriesHandler(&repository.Categories{DB: r.Db}, r.Cache, ttl)
	tags := handler.NewTagsHandler(&repository.Tags{DB: r.Db}, r.Cache, ttl)
	tools := handler.NewToolsHandler(&repository.Tools{DB: r.Db})

	r.get("/writeups/api/{$}", writeups.Index)
	r.get("/writeups/api/categories/{$}", categories.Index)
	r.get("/writeups/api/tags/{$}", tags.Index)
	r.get("/writeups/api/tools/{$}", tools.Index)
	r.get("/writeups/api/{slug}/{$}", writeups.Show)
}

func (r *Router) Metrics() {
	if r.Gatherer == nil {
		return
	}

	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler(r.Gatherer))
}

func (r *Router) Admin() {
	login := handler.NewAuthHandler(&repository.AdminUsers{DB: r.Db}, r.JWT, r.validator)
	loginRoute := "/admin/login"

	r.Mux.HandleFunc("POST "+loginRoute, r.PublicPipelineFor(loginRoute, login.Login, r.Pipeline.Throttle.Handle))

	abstract := admin.NewHandler(&repository.Resources{DB: r.Db}, r.validator, r.Cache)

	routes := []struct {
		method  string
		route   string
		handler endpoint.ApiHandler
	}{
		{baseHttp.MethodGet, "/admin/resources", abstract.Schema},
		{baseHttp.MethodGet, "/admin/{resource}/{$}", abstract.Index},
		{baseHttp.MethodPost, "/admin/{resource}/{$}", abstract.Store},
		{baseHttp.MethodGet, "/admin/{resource}/{id}", abstract.Show},
		{baseHttp.MethodPut, "/admin/{resource}/{id}", abstract.Update},
		{baseHttp.MethodDelete, "/admin/{resource}/{id}", abstract.Destroy},
		{baseHttp.MethodPost, "/admin/{resource}/actions/{action}", abstract.Action},
	}

	for _, item := range routes {
		r.Mux.HandleFunc(item.method+" "+item.route, r.AdminPipelineFor(item.route, item.handler))
	}
}
