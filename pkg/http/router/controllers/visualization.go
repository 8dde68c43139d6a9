package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/roadgraph/pkg/engine/routing"
	"github.com/lintang-b-s/roadgraph/pkg/geo"
	"go.uber.org/zap"
)

// searchVisualization upgrades to a websocket and streams one visit frame per settled intersection,
// then a single route, no_path or error frame, then closes.
func (api *routingAPI) searchVisualization(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request, algorithm, err := parseShortestPathRequest(r)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	// the hijacked conn keeps the server deadlines
	_ = conn.SetDeadline(time.Time{})

	api.log.Info("established websocket connection", zap.String("remote_addr", r.RemoteAddr),
		zap.String("protocol", hs.Protocol), zap.String("algorithm", algorithm.String()))

	user := api.hub.Register(conn)
	defer func() {
		if err := user.close(); err != nil {
			api.log.Debug("close websocket", zap.Error(err))
		}
		api.hub.Remove(user)
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var (
		seq      int
		writeErr error
	)
	onVisit := func(point geo.GeographicPoint) {
		if writeErr != nil {
			return
		}
		seq++
		pt := point
		if writeErr = user.write(visualizationFrame{Type: frameVisit, Seq: seq, Point: &pt}); writeErr != nil {
			cancel()
		}
	}

	res, err := api.routingService.SearchVisualization(ctx, algorithm, request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon, onVisit)
	if writeErr != nil {
		api.log.Info("search visualization client went away", zap.Error(writeErr))
		return
	}

	var last visualizationFrame
	switch {
	case err == nil:
		route := NewShortestPathResponse(res)
		last = visualizationFrame{Type: frameRoute, Seq: seq + 1, Route: &route}
	case errors.Is(err, routing.ErrPathNotFound):
		last = visualizationFrame{Type: frameNoPath, Seq: seq + 1, Message: err.Error()}
	default:
		last = visualizationFrame{Type: frameError, Seq: seq + 1, Message: err.Error()}
	}
	if err := user.write(last); err != nil {
		api.log.Info("write last search visualization frame", zap.Error(err))
	}
}
