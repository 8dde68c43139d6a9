package http

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/roadgraph/pkg/http/router"
	"github.com/lintang-b-s/roadgraph/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/roadgraph/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. It stops once ctx is canceled; Wait returns its error.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	routingService controllers.RoutingService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	rateLimit := http_router.RateLimitConfig{
		Enabled:    useRateLimit,
		RPS:        viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:      viper.GetInt("RATE_LIMIT_BURST"),
		TrustProxy: viper.GetBool("RATE_LIMIT_TRUST_PROXY"),
	}

	server := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(
			gctx, config, log,
			rateLimit, routingService,
		)
	})
	s.g = g

	return s, nil
}

// Wait blocks until the API stops. A shutdown caused by ctx is not an error.
func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	err := s.g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// GracefulShutdown blocks until SIGINT or SIGTERM.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
