package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/httpserver"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type routeInfo struct {
	name      string
	method    string
	path      string
	requestID string
}

type routeInfoKey struct{}

func routeInfoFrom(ctx context.Context) routeInfo {
	info, _ := ctx.Value(routeInfoKey{}).(routeInfo)
	return info
}

// Instrument wraps a route handler so that it runs with the route details
// and a request id in its context. A well-formed incoming X-Request-ID is
// kept, anything else is replaced by a fresh UUID. The id is echoed back.
func Instrument(rt Route) httpserver.HandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx = context.WithValue(ctx, routeInfoKey{}, routeInfo{
			name:      rt.Name,
			method:    r.Method,
			path:      r.URL.Path,
			requestID: requestID,
		})
		rt.Handler(ctx, w, r.WithContext(ctx))
	}
}
