package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/roadgraph/pkg/engine"
	"github.com/lintang-b-s/roadgraph/pkg/http"
	"github.com/lintang-b-s/roadgraph/pkg/http/usecases"
	"github.com/lintang-b-s/roadgraph/pkg/logger"
	"github.com/lintang-b-s/roadgraph/pkg/spatialindex"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	mapFile = flag.String("map", "", "road map file (plain or .bz2), overrides MAP_FILE")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	mapFilePath := viper.GetString("MAP_FILE")
	if *mapFile != "" {
		mapFilePath = *mapFile
	}
	routingEngine, err := engine.NewEngine(mapFilePath, logger)
	if err != nil {
		logger.Fatal("failed to load road map", zap.Error(err))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(routingEngine.GetIntersections(), viper.GetFloat64("LEAF_BOUNDING_BOX_RADIUS"), logger)

	routingService, err := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(), rtree,
		routingEngine.GetSegments(), routingEngine.GetIntersections(), viper.GetFloat64("SEARCH_RADIUS"),
		viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api, err := http.NewServer(logger).Use(ctx, logger, viper.GetBool("USE_RATE_LIMIT"), routingService)
	if err != nil {
		logger.Fatal("failed to start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("api stopped with error", zap.Error(err))
	}
	logger.Info("Road Network Server Stopped", zap.String("signal", signal.String()))
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
