package grader

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lintang-b-s/roadgraph/pkg/concurrent"
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/graphloader"
	"go.uber.org/zap"
)

// CheckResult is one scored test of a case.
type CheckResult struct {
	Num         int
	Description string
	Passed      bool
	Detail      string
}

type CaseResult struct {
	Case     Case
	Checks   []CheckResult
	Err      error
	TimedOut bool
}

type Grader struct {
	log         *zap.Logger
	caseTimeout time.Duration
	workers     int
}

func NewGrader(log *zap.Logger, caseTimeout time.Duration, workers int) *Grader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Grader{
		log:         log,
		caseTimeout: caseTimeout,
		workers:     workers,
	}
}

type caseJob struct {
	idx int
	c   Case
}

type caseJobResult struct {
	idx int
	res CaseResult
}

// Run grades cases concurrently. The report lists them in the given order.
func (g *Grader) Run(ctx context.Context, cases []Case) *Report {
	jobs := make([]caseJob, 0, len(cases))
	for i, c := range cases {
		jobs = append(jobs, caseJob{idx: i, c: c})
	}
	results := concurrent.Run(ctx, g.workers, jobs, func(ctx context.Context, job caseJob) caseJobResult {
		return caseJobResult{idx: job.idx, res: g.runCase(ctx, job.c)}
	})

	ordered := make([]*CaseResult, len(cases))
	for _, r := range results {
		res := r.res
		ordered[r.idx] = &res
	}

	report := &Report{}
	for i, c := range cases {
		if ordered[i] == nil {
			// never queued, ctx was done
			report.add(failedCase(c, fmt.Errorf("not run: %w", ctx.Err()), false))
			continue
		}
		report.add(*ordered[i])
	}
	return report
}

// runCase gives the case caseTimeout to finish. A case that runs over is failed; its search
// sees the canceled context and stops on its own.
func (g *Grader) runCase(ctx context.Context, c Case) CaseResult {
	if g.caseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.caseTimeout)
		defer cancel()
	}

	done := make(chan CaseResult, 1)
	go func() {
		done <- g.evaluate(ctx, c)
	}()

	select {
	case res := <-done:
		g.log.Info("graded case", zap.Int("case", c.Num), zap.String("map", c.MapFile),
			zap.Int("passed", res.numPassed()), zap.Int("checks", len(res.Checks)))
		return res
	case <-ctx.Done():
		g.log.Warn("case timed out", zap.Int("case", c.Num), zap.String("map", c.MapFile),
			zap.Duration("timeout", g.caseTimeout))
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		return failedCase(c, ctx.Err(), timedOut)
	}
}

func (g *Grader) evaluate(ctx context.Context, c Case) CaseResult {
	result, err := graphloader.LoadRoadMapFile(c.MapFile, graphloader.WithLogger(g.log))
	if err != nil {
		return failedCase(c, err, false)
	}
	ans, err := ReadCorrectAnswer(c.AnswerFile, c.CheckCounts)
	if err != nil {
		return failedCase(c, err, false)
	}

	res := CaseResult{Case: c}
	num := c.firstCheckNum()
	if c.CheckCounts {
		res.Checks = append(res.Checks,
			countCheck(num, "Testing vertex count", ans.Vertices, result.Graph.NumVertices()),
			countCheck(num+1, "Testing edge count", ans.Edges, result.Graph.NumEdges()),
		)
		num += 2
	}

	engine := routing.NewRoutingEngine(result.Graph, g.log)
	var path []geo.GeographicPoint
	route, err := engine.ShortestPath(ctx, c.Algorithm, c.Start, c.Goal)
	switch {
	case err == nil:
		path = route.Path
	case errors.Is(err, routing.ErrPathNotFound):
	default:
		return failedCase(c, err, errors.Is(err, context.DeadlineExceeded))
	}

	res.Checks = append(res.Checks, pathCheck(num, searchDescription(c), c.Match, ans.Path, path))
	return res
}

func searchDescription(c Case) string {
	if c.Algorithm == routing.BFS {
		return "Testing BFS"
	}
	name := c.Algorithm.String()
	switch c.Algorithm {
	case routing.ASTAR:
		name = "A*"
	case routing.DIJKSTRA:
		name = "Dijkstra"
	}
	return fmt.Sprintf("Running %s from (%v, %v) to (%v, %v)", name, c.Start.Lat, c.Start.Lon, c.Goal.Lat, c.Goal.Lon)
}

func countCheck(num int, desc string, want, got int) CheckResult {
	if want != got {
		return CheckResult{Num: num, Description: desc, Detail: fmt.Sprintf("Expected %d; got %d.", want, got)}
	}
	return CheckResult{Num: num, Description: desc, Passed: true}
}

func pathCheck(num int, desc string, match MatchMode, want, got []geo.GeographicPoint) CheckResult {
	check := CheckResult{Num: num, Description: desc}
	switch {
	case got == nil && want == nil:
		check.Passed = true
	case got == nil:
		check.Detail = fmt.Sprintf("Your implementation returned null; expected \n%s.", formatPath(want))
	case want == nil:
		check.Detail = fmt.Sprintf("Your implementation returned \n%s; expected null.", formatPath(got))
	case !pathsMatch(match, want, got):
		check.Detail = fmt.Sprintf("Expected: \n%s Got: \n%s", formatPath(want), formatPath(got))
		if len(got) != len(want) {
			check.Detail += fmt.Sprintf("Your result has size %d; expected %d.", len(got), len(want))
		} else {
			check.Detail += "Correct size, but incorrect path."
		}
	default:
		check.Passed = true
	}
	return check
}

func pathsMatch(match MatchMode, want, got []geo.GeographicPoint) bool {
	if len(want) != len(got) {
		return false
	}
	if match == MatchExact {
		for i := range want {
			if want[i] != got[i] {
				return false
			}
		}
		return true
	}
	expected := make(map[geo.GeographicPoint]struct{}, len(want))
	for _, p := range want {
		expected[p] = struct{}{}
	}
	for _, p := range got {
		if _, ok := expected[p]; !ok {
			return false
		}
	}
	return true
}

func formatPath(path []geo.GeographicPoint) string {
	lines := make([]string, 0, len(path))
	for _, p := range path {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

// failedCase fails every check of c with err.
func failedCase(c Case, err error, timedOut bool) CaseResult {
	res := CaseResult{Case: c, Err: err, TimedOut: timedOut}
	detail := fmt.Sprintf("Error during runtime: %v", err)
	if timedOut {
		detail = "Your program entered an infinite loop."
	}
	descs := []string{searchDescription(c)}
	if c.CheckCounts {
		descs = []string{"Testing vertex count", "Testing edge count", searchDescription(c)}
	}
	for i, d := range descs {
		res.Checks = append(res.Checks, CheckResult{Num: c.firstCheckNum() + i, Description: d, Detail: detail})
	}
	return res
}

func (cr CaseResult) numPassed() int {
	n := 0
	for _, ch := range cr.Checks {
		if ch.Passed {
			n++
		}
	}
	return n
}

type Report struct {
	Cases  []CaseResult
	Passed int
	Total  int
}

func (r *Report) add(res CaseResult) {
	r.Cases = append(r.Cases, res)
	r.Passed += res.numPassed()
	r.Total += len(res.Checks)
}

func (r *Report) Score() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total)
}

func (r *Report) AllPassed() bool {
	return r.Total > 0 && r.Passed == r.Total
}

func (r *Report) Feedback() string {
	var sb strings.Builder
	if r.AllPassed() {
		sb.WriteString("All tests passed. Great job!")
	} else {
		sb.WriteString("Some tests failed. Check your code for errors, then try again:")
	}
	for _, res := range r.Cases {
		sb.WriteString("\n\n")
		sb.WriteString(res.Case.Description)
		for _, ch := range res.Checks {
			fmt.Fprintf(&sb, "\n** Test #%d: %s...", ch.Num, ch.Description)
			if ch.Passed {
				sb.WriteString("PASSED.")
			} else {
				sb.WriteString("FAILED. ")
				sb.WriteString(ch.Detail)
			}
		}
	}
	return sb.String()
}

// String renders "Score: <fraction>\nFeedback: <text>".
func (r *Report) String() string {
	score := strconv.FormatFloat(r.Score(), 'f', -1, 64)
	if !strings.Contains(score, ".") {
		score += ".0"
	}
	return fmt.Sprintf("Score: %s\nFeedback: %s", score, r.Feedback())
}
