package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const maxSearchResults = 20

type Rtree struct {
	tr *rtree.RTreeG[geo.GeographicPoint]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[geo.GeographicPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree over the intersections, each leaf having a bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(intersections []geo.GeographicPoint, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("intersections", len(intersections)))
	step := len(intersections) / 10
	for i, p := range intersections {
		if step > 0 && i%step == 0 {
			log.Info("Building R-tree spatial index...", zap.Float64("progress", math.Round(float64(i)/float64(len(intersections))*100)))
		}
		lowerLat, lowerLon := geo.GetDestinationPoint(p.Lat, p.Lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(p.Lat, p.Lon, 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, p)
	}

	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for at most 20 intersections whose leaf box meets the box of radius (in km)
// around the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []geo.GeographicPoint {
	return rt.searchBox(qLat, qLon, radius, maxSearchResults)
}

// searchBox. limit <= 0 means no limit
func (rt *Rtree) searchBox(qLat, qLon, radius float64, limit int) []geo.GeographicPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]geo.GeographicPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data geo.GeographicPoint) bool {
			results = append(results, data)
			return limit <= 0 || len(results) < limit
		})
	return results
}

// Nearest returns the intersections within radius km of (qLat, qLon), closest first.
func (rt *Rtree) Nearest(qLat, qLon, radius float64) []geo.GeographicPoint {
	q := geo.NewGeographicPoint(qLat, qLon)
	cands := rt.searchBox(qLat, qLon, radius, 0)
	within := cands[:0]
	for _, c := range cands {
		if q.Distance(c) <= radius {
			within = append(within, c)
		}
	}
	sort.SliceStable(within, func(i, j int) bool {
		return q.Distance(within[i]) < q.Distance(within[j])
	})
	return within
}
