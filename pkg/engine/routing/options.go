package routing

import (
	"context"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
)

// VisitFunc is called once for every node as it is settled, in settle order.
type VisitFunc func(p geo.GeographicPoint)

type searchOptions struct {
	ctx     context.Context
	onVisit VisitFunc
}

type SearchOption func(*searchOptions)

func defaultSearchOptions() searchOptions {
	return searchOptions{
		ctx:     context.Background(),
		onVisit: func(geo.GeographicPoint) {},
	}
}

// WithVisitor registers a callback for every settled node. It must not modify the graph.
func WithVisitor(onVisit VisitFunc) SearchOption {
	return func(o *searchOptions) {
		if onVisit != nil {
			o.onVisit = onVisit
		}
	}
}

// WithContext stops the search with "no path" once ctx is done.
func WithContext(ctx context.Context) SearchOption {
	return func(o *searchOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
