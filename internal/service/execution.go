package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/antonio-alexander/go-employee-directory/internal"
	"github.com/antonio-alexander/go-employee-directory/internal/data"
)

func idFromPath(pathVariables map[string]string) string {
	return pathVariables[data.PathId]
}

// getCorrelationId returns the correlation id provided by the caller or
// generates one if it wasn't provided
func getCorrelationId(request *http.Request) string {
	if correlationId := request.Header.Get(internal.HeaderCorrelationId); correlationId != "" {
		return correlationId
	}
	return internal.GenerateId()
}

// statusFromError maps the kind of error to a status code and the message
// that's safe to return to the caller
func statusFromError(err *data.Error, notFoundEnabled bool) (int, string) {
	switch err.Kind {
	default:
		return http.StatusInternalServerError, data.MessageFetchFailed
	case data.KindInvalidInput:
		return http.StatusBadRequest, err.Message
	case data.KindNotFound:
		// not found is folded into the generic failure unless enabled
		if notFoundEnabled {
			return http.StatusNotFound, err.Message
		}
		return http.StatusInternalServerError, data.MessageFetchFailed
	}
}

func (s *service) write(ctx context.Context, writer http.ResponseWriter, statusCode int, bytes []byte) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	if _, err := writer.Write(bytes); err != nil {
		s.Error(ctx, "error handling response: %s", err)
	}
}

func (s *service) handleError(ctx context.Context, writer http.ResponseWriter, statusCode int, message string) {
	bytes, err := json.Marshal(&data.ErrorResponse{Message: message})
	if err != nil {
		s.Error(ctx, "error handling response: %s", err)
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.write(ctx, writer, statusCode, bytes)
}

// handleResult writes exactly one response for the result, successful
// payloads are written without modification
func (s *service) handleResult(ctx context.Context, writer http.ResponseWriter, result data.Result) {
	if result.Ok() {
		s.write(ctx, writer, http.StatusOK, result.Payload)
		return
	}
	statusCode, message := statusFromError(result.Err, s.config.notFoundEnabled)
	s.handleError(ctx, writer, statusCode, message)
}

func (s *service) handleResponse(ctx context.Context, writer http.ResponseWriter, item any) {
	if item == nil {
		writer.WriteHeader(http.StatusNoContent)
		return
	}
	bytes, err := json.Marshal(item)
	if err != nil {
		s.Error(ctx, "error handling response: %s", err)
		s.handleError(ctx, writer, http.StatusInternalServerError, err.Error())
		return
	}
	s.write(ctx, writer, http.StatusOK, bytes)
}
