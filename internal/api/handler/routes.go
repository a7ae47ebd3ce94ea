package handler

import (
	"net/http"

	"github.com/yupiter/analytics-api/internal/api/handler/router"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/internal/scheduler"
	"github.com/yupiter/analytics-api/internal/usecases/authenticating"
	"github.com/yupiter/analytics-api/internal/usecases/cataloging"
	"github.com/yupiter/analytics-api/internal/usecases/insighting"
	"github.com/yupiter/analytics-api/internal/usecases/projecting"
	"github.com/yupiter/analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
	}
}

// Catalog wires the CRUD routes of every dashboard collection
func Catalog(catalog *cataloging.Catalog) []router.Route {
	routes := collectionRoutes[domain.Store]("/v1/stores", catalog.Stores)
	routes = append(routes, collectionRoutes[domain.CostRule]("/v1/costs", catalog.Costs)...)
	routes = append(routes, collectionRoutes[domain.NegativeStore]("/v1/negatives", catalog.Negatives)...)
	routes = append(routes, collectionRoutes[domain.Meeting]("/v1/meetings", catalog.Meetings)...)
	routes = append(routes, collectionRoutes[domain.NewStoreLaunch]("/v1/new-stores", catalog.NewStores)...)
	routes = append(routes, collectionRoutes[domain.ReportTemplate]("/v1/reports", catalog.Reports)...)
	routes = append(routes, collectionRoutes[domain.DataSource]("/v1/data-sources", catalog.DataSources)...)
	return routes
}

// collectionRoutes builds the standard list/create/update/delete route set
// for one collection under its base path.
func collectionRoutes[T any, PT interface {
	domain.Entity
	*T
}](path string, manager cataloging.Manager[PT]) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        path,
			Method:      http.MethodGet,
			Handler:     ListCatalog(manager),
			Middlewares: allRoles,
		},
		{
			Path:        path,
			Method:      http.MethodPost,
			Handler:     CreateCatalog[T, PT](manager),
			Middlewares: allRoles,
		},
		{
			Path:        path + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCatalog[T, PT](manager),
			Middlewares: allRoles,
		},
		{
			Path:        path + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCatalog(manager),
			Middlewares: allRoles,
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/productivity",
			Method:      http.MethodGet,
			Handler:     GetProductivity(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/negatives/pipeline",
			Method:      http.MethodGet,
			Handler:     GetPipelineCounts(service),
			Middlewares: allRoles,
		},
	}
}

func Projection(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/investment/projection",
			Method:      http.MethodGet,
			Handler:     GetProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Snapshots(service *scheduler.SnapshotSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/run",
			Method:      http.MethodPost,
			Handler:     RunSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/snapshots/status",
			Method:      http.MethodGet,
			Handler:     GetSnapshotStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
	}
}
