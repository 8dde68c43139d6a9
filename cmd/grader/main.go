package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lintang-b-s/roadgraph/pkg/grader"
	"github.com/lintang-b-s/roadgraph/pkg/logger"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"github.com/spf13/viper"
)

var (
	dir   = flag.String("dir", "./data/graders", "directory holding the search and astar test maps")
	suite = flag.String("suite", "all", "search, astar or all")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var cases []grader.Case
	switch *suite {
	case "search":
		cases = grader.SearchSuite(filepath.Join(*dir, "search"))
	case "astar":
		cases = grader.AStarSuite(filepath.Join(*dir, "astar"))
	case "all":
		cases = append(grader.SearchSuite(filepath.Join(*dir, "search")),
			grader.AStarSuite(filepath.Join(*dir, "astar"))...)
	default:
		fmt.Fprintf(os.Stderr, "unknown suite %q\n", *suite)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := grader.NewGrader(log, viper.GetDuration("GRADER_CASE_TIMEOUT"), viper.GetInt("GRADER_WORKERS"))
	report := g.Run(ctx, cases)
	fmt.Println(report.String())
	if !report.AllPassed() {
		os.Exit(1)
	}
}
