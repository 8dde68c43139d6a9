package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	helper "github.com/lintang-b-s/roadgraph/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const defaultAlgorithm = "astar"

type routingAPI struct {
	routingService RoutingService
	hub            *Hub
	log            *zap.Logger
}

func New(routingService RoutingService, hub *Hub, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		hub:            hub,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/intersections", api.intersections)
	group.GET("/ws/searchVisualization", api.searchVisualization)
}

// parseShortestPathRequest reads and validates the route query string shared by the http and websocket endpoints.
func parseShortestPathRequest(r *http.Request) (shortestPathRequest, routing.Algorithm, error) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		return request, 0, errors.New("origin_lat is required and must be a valid float")
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		return request, 0, errors.New("origin_lon is required and must be a valid float")
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		return request, 0, errors.New("destination_lat is required and must be a valid float")
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		return request, 0, errors.New("destination_lon is required and must be a valid float")
	}
	request.Algorithm = strings.ToLower(strings.TrimSpace(query.Get("algorithm")))
	if request.Algorithm == "" {
		request.Algorithm = defaultAlgorithm
	}

	if err := validateRequest(request); err != nil {
		return request, 0, err
	}

	algorithm, err := routing.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return request, 0, err
	}
	return request, algorithm, nil
}

func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, algorithm, err := parseShortestPathRequest(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.routingService.ShortestPath(r.Context(), algorithm, request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) intersections(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	points := api.routingService.Intersections()
	resp := intersectionsResponse{
		Count:         len(points),
		Intersections: points,
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
