package grader

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/util"
)

var ErrMalformedAnswer = errors.New("malformed answer file")

// CorrectAnswer is the expected outcome of one grading case. A nil Path means no path exists.
type CorrectAnswer struct {
	HasCounts bool
	Vertices  int
	Edges     int
	Path      []geo.GeographicPoint
}

// ParseCorrectAnswer reads whitespace separated tokens: "vertices edges" when hasCounts is set,
// then lat lon pairs of the expected path.
func ParseCorrectAnswer(r io.Reader, hasCounts bool) (*CorrectAnswer, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tokens := make([]string, 0, 16)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "read answer")
	}

	ans := &CorrectAnswer{HasCounts: hasCounts}
	if hasCounts {
		if len(tokens) < 2 {
			return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "missing vertex and edge counts")
		}
		var err error
		if ans.Vertices, err = strconv.Atoi(tokens[0]); err != nil {
			return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "vertex count %q", tokens[0])
		}
		if ans.Edges, err = strconv.Atoi(tokens[1]); err != nil {
			return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "edge count %q", tokens[1])
		}
		tokens = tokens[2:]
	}

	if len(tokens) == 0 {
		return ans, nil
	}
	if len(tokens)%2 != 0 {
		return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "odd number of path coordinates")
	}
	ans.Path = make([]geo.GeographicPoint, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		lat, err := util.StringToFloat64(tokens[i])
		if err != nil {
			return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "latitude %q", tokens[i])
		}
		lon, err := util.StringToFloat64(tokens[i+1])
		if err != nil {
			return nil, util.WrapErrorf(ErrMalformedAnswer, util.ErrBadParamInput, "longitude %q", tokens[i+1])
		}
		ans.Path = append(ans.Path, geo.NewGeographicPoint(lat, lon))
	}
	return ans, nil
}

func ReadCorrectAnswer(path string, hasCounts bool) (*CorrectAnswer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "open answer file %s", path)
	}
	defer f.Close()
	ans, err := ParseCorrectAnswer(f, hasCounts)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrorCode(err), "answer file %s", path)
	}
	return ans, nil
}
