package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/roadgraph/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/roadgraph/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/roadgraph/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
	// TrustProxy keys clients on X-Real-IP/X-Forwarded-For instead of the socket peer.
	TrustProxy bool
}

type API struct {
	log *zap.Logger
	hub *controllers.Hub
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log, hub: controllers.NewHub()}
}

// Handler builds the full middleware chain and routes. reg receives the http metrics and is served on /metrics.
func (api *API) Handler(reg *prometheus.Registry, rateLimit RateLimitConfig,
	routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	group := router_helper.NewRouteGroup(router, "/api")

	roadgraphRoutes := controllers.New(routingService, api.hub, api.log)

	roadgraphRoutes.Routes(group)

	metrics := NewMetrics(reg)

	var mwChain []alice.Constructor
	mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels, PromeHttpMiddleware(metrics, router))
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst, rateLimit.TrustProxy))
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			roadgraph API
//	@version		1.0
//	@description	Shortest path search (bfs, dijkstra, a*) over a road network built from road segment files.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	rateLimit RateLimitConfig,
	routingService controllers.RoutingService,
) error {
	log.Info("Run httprouter API")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := api.Handler(reg, rateLimit, routingService)

	srv := http_server.New(ctx, handler, config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		log.Info("HTTP server stopped", zap.Error(err))
		api.hub.RemoveAllUser()
		return err

	case <-ctx.Done():
		log.Info("Context canceled, shutting down server")
		api.hub.RemoveAllUser()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
