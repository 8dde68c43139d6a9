package main

import (
	"flag"

	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"github.com/lintang-b-s/roadgraph/pkg/logger"
	"go.uber.org/zap"
)

var (
	mapFile = flag.String("map", "./data/maps/ucsd.map", "road map file (plain or .bz2)")
	outFile = flag.String("out", "./data/maps/ucsd.intersections", "output file, one edge per line")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	err = graphloader.CreateIntersectionsFile(*mapFile, *outFile, graphloader.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to write intersections", zap.Error(err))
	}
	logger.Info("intersections written", zap.String("out", *outFile))
}
