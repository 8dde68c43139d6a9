package controllers

import (
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"github.com/lintang-b-s/roadgraph/pkg/guidance"
	"github.com/lintang-b-s/roadgraph/pkg/http/usecases"
)

// coordinates may be 0, so they are range checked only
type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
	Algorithm      string  `json:"algorithm" validate:"required,oneof=bfs dijkstra astar a* a-star"`
}

type shortestPathResponse struct {
	Algorithm               string                 `json:"algorithm"`
	Distance                float64                `json:"distance"`
	Path                    string                 `json:"path"`
	Origin                  geo.GeographicPoint    `json:"origin"`
	Destination             geo.GeographicPoint    `json:"destination"`
	OriginSnapDistance      float64                `json:"origin_snap_distance"`
	DestinationSnapDistance float64                `json:"destination_snap_distance"`
	Intersections           []geo.GeographicPoint  `json:"intersections"`
	Geometry                []geo.GeographicPoint  `json:"geometry"`
	Steps                   []routing.RouteStep    `json:"steps"`
	Instructions            []guidance.Instruction `json:"instructions"`
	Visited                 int                    `json:"visited"`
}

func NewShortestPathResponse(res *usecases.RouteResult) shortestPathResponse {
	return shortestPathResponse{
		Algorithm:               res.Route.Algorithm.String(),
		Distance:                res.Route.Length,
		Path:                    res.Polyline,
		Origin:                  res.Origin,
		Destination:             res.Destination,
		OriginSnapDistance:      res.OriginSnapDistance,
		DestinationSnapDistance: res.DestinationSnapDistance,
		Intersections:           res.Route.Path,
		Geometry:                res.Geometry,
		Steps:                   res.Route.Steps,
		Instructions:            res.Instructions,
		Visited:                 res.Route.NumSettled,
	}
}

type intersectionsResponse struct {
	Count         int                   `json:"count"`
	Intersections []geo.GeographicPoint `json:"intersections"`
}

const (
	frameVisit  = "visit"
	frameRoute  = "route"
	frameNoPath = "no_path"
	frameError  = "error"
)

// visualizationFrame is one websocket text message of a search visualization stream.
type visualizationFrame struct {
	Type    string                `json:"type"`
	Seq     int                   `json:"seq,omitempty"`
	Point   *geo.GeographicPoint  `json:"point,omitempty"`
	Route   *shortestPathResponse `json:"route,omitempty"`
	Message string                `json:"message,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
