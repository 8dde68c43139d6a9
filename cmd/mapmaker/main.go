package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/roadgraph/pkg/logger"
	"github.com/lintang-b-s/roadgraph/pkg/mapmaker"
	"go.uber.org/zap"
)

var (
	pbfFile = flag.String("f", "./data/ucsd.osm.pbf", "openstreetmap extract (.osm.pbf)")
	bounds  = flag.String("bounds", "", "south,west,north,east; empty keeps the whole extract")
	outFile = flag.String("out", "./data/maps/ucsd.map", "road map output, bzip2 compressed if it ends in .bz2")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var box *mapmaker.Bounds
	if *bounds != "" {
		b, err := mapmaker.ParseBounds(*bounds)
		if err != nil {
			logger.Fatal("bad -bounds", zap.Error(err))
		}
		box = &b
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mapmaker.CreateRoadMapFile(ctx, *pbfFile, *outFile, box, logger); err != nil {
		logger.Fatal("failed to make road map", zap.Error(err))
	}
}
