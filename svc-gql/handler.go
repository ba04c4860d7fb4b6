package svcgql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go"
	qerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// Params is the request envelope of a GraphQL operation.
type Params struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Observer is told about every executed operation.
type Observer interface {
	ObserveOperation(ctx context.Context, params Params, start time.Time, response *graphql.Response)
}

type ObserverFunc func(ctx context.Context, params Params, start time.Time, response *graphql.Response)

func (f ObserverFunc) ObserveOperation(ctx context.Context, params Params, start time.Time, response *graphql.Response) {
	f(ctx, params, start, response)
}

// Handler executes GraphQL operations sent as GET query parameters, as a JSON
// POST body or as an application/graphql POST body.
type Handler struct {
	Schema    *graphql.Schema
	Observers []Observer
}

type requestError struct {
	status int
	err    error
}

func (e *requestError) Error() string { return e.err.Error() }

func badRequest(format string, args ...interface{}) error {
	return &requestError{status: http.StatusBadRequest, err: fmt.Errorf(format, args...)}
}

// bodyError reports a body that could not be read or decoded, or one that
// went past maxBodyBytes.
func bodyError(err error, format string, args ...interface{}) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &requestError{
			status: http.StatusRequestEntityTooLarge,
			err:    fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit),
		}
	}
	return badRequest(format, append(args, err)...)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := zerolog.Ctx(req.Context())

	params, err := ReadParams(w, req)
	if err != nil {
		status := http.StatusBadRequest
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			status = reqErr.status
		}
		if status == http.StatusMethodNotAllowed {
			w.Header().Set("Allow", "GET, POST")
		}
		logger.Debug().Err(err).Int("status", status).Msg("rejected graphql request")
		writeJSON(w, req, status, &graphql.Response{
			Errors: []*qerrors.QueryError{qerrors.Errorf("%v", err)},
		})
		return
	}

	start := time.Now()
	response := h.Schema.Exec(req.Context(), params.Query, params.OperationName, params.Variables)
	for _, observer := range h.Observers {
		observer.ObserveOperation(req.Context(), params, start, response)
	}
	if len(response.Errors) > 0 {
		logger.Debug().
			Str("operation", params.OperationName).
			Int("errors", len(response.Errors)).
			Str("first", response.Errors[0].Message).
			Msg("graphql operation returned errors")
	}

	writeJSON(w, req, http.StatusOK, response)
}

// ReadParams extracts the operation from the request.
func ReadParams(w http.ResponseWriter, req *http.Request) (Params, error) {
	var params Params
	switch req.Method {
	case http.MethodGet:
		values := req.URL.Query()
		params.Query = values.Get("query")
		params.OperationName = values.Get("operationName")
		if raw := values.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &params.Variables); err != nil {
				return Params{}, badRequest("variables are invalid JSON: %v", err)
			}
		}

	case http.MethodPost:
		body := http.MaxBytesReader(w, req.Body, maxBodyBytes)
		mediaType := "application/json"
		if ct := req.Header.Get("Content-Type"); ct != "" {
			mt, _, err := mime.ParseMediaType(ct)
			if err != nil {
				return Params{}, badRequest("invalid content type %q", ct)
			}
			mediaType = mt
		}
		switch mediaType {
		case "application/graphql":
			raw, err := io.ReadAll(body)
			if err != nil {
				return Params{}, bodyError(err, "unable to read body: %v")
			}
			params.Query = string(raw)
			params.OperationName = req.URL.Query().Get("operationName")
		case "application/json":
			if err := json.NewDecoder(body).Decode(&params); err != nil {
				return Params{}, bodyError(err, "POST body sent invalid JSON: %v")
			}
		default:
			return Params{}, &requestError{
				status: http.StatusUnsupportedMediaType,
				err:    fmt.Errorf("unsupported content type %q", mediaType),
			}
		}

	default:
		return Params{}, &requestError{
			status: http.StatusMethodNotAllowed,
			err:    errors.New("GraphQL only supports GET and POST requests"),
		}
	}

	if params.Query == "" {
		return Params{}, badRequest("Must provide query string.")
	}
	return params, nil
}

func writeJSON(w http.ResponseWriter, req *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(req.Context()).Warn().Err(err).Msg("unable to write graphql response")
	}
}
