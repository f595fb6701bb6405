package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/juju/errors"
	"github.com/umakantv/go-utils/errs"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// logRequest logs with the route details attached by Instrument:
// timestamp - route - method - path - request id - message.
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	info := routeInfoFrom(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + info.name + " - " + info.method + " - " + info.path
	if info.requestID != "" {
		logMsg += " - request:" + info.requestID
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", info.name),
		zap.String("method", info.method),
		zap.String("path", info.path),
		zap.String("request_id", info.requestID),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

// badRequest builds an error body whose Code matches the 400 status line
func badRequest(message string) *errs.AppError {
	return &errs.AppError{Code: http.StatusBadRequest, Message: message}
}

// writeJSON writes body as JSON with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps an error kind onto a status code and error body.
// Duplicates are reported as 400, like other rejected input.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errors.NotValid):
		logRequest(ctx, "info", "Invalid request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, badRequest(err.Error()))
	case errors.Is(err, errors.AlreadyExists):
		logRequest(ctx, "info", "Duplicate record", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, badRequest(err.Error()))
	case errors.Is(err, errors.NotFound):
		logRequest(ctx, "info", "Record not found", zap.Error(err))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError(err.Error()))
	default:
		logRequest(ctx, "error", "Storage failure", zap.Error(err), zap.String("trace", errors.ErrorStack(err)))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Database error"))
	}
}

// decodeBody decodes the JSON request body into dest.
// An invalid body is answered with 400 and false is returned.
func decodeBody(ctx context.Context, w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid JSON"))
		return false
	}
	return true
}

// pathID parses the named numeric path variable.
// An invalid value is answered with 400 and false is returned.
func pathID(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	idStr := mux.Vars(r)[name]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logRequest(ctx, "error", "Invalid path id", zap.String(name, idStr))
		writeJSON(w, http.StatusBadRequest, badRequest("Invalid "+name))
		return 0, false
	}
	return id, true
}
