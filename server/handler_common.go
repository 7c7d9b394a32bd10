package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"inkwell/dto"
	"inkwell/logic"
	"inkwell/shared"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
)

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

func emptyMW(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	})
}

// Returns the JSON serialized object as the response body; handles errors.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v\n", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if _, err = fmt.Fprintln(w, string(respJson)); err != nil {
		logger.Warnf("Failed to write response: %v\n", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	resp := errorResp{msg, code}
	respJson, _ := json.Marshal(resp)
	http.Error(w, string(respJson), code)
}

func readBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request) []byte {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warnf("Failed to read request body: %v", err)
		http.Error(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	return body
}

// httpStatusOf maps the operation's result kind to the response status.
func httpStatusOf(res dto.ResultType) int {
	switch res {
	case dto.ResultOk:
		return http.StatusOK
	case dto.ResultError400:
		return http.StatusBadRequest
	case dto.ResultError401:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeOperationResult reports the outcome of an API operation as a
// GeneralResponse carrying the result kind.
func writeOperationResult(logger shared.ILogger, w http.ResponseWriter, err error) {
	res := logic.ResultOf(err)
	resp := dto.GeneralResponse{ResultType: res}
	if err != nil {
		resp.Error = err.Error()
		// Delivery timeouts and peer refusals show up here; they are the
		// caller's problem only on primary-tier failures
		if errors.Is(err, logic.ErrTransport) {
			logger.Warnf("Operation failed at delivery: %v", err)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusOf(res))
	respJson, _ := json.Marshal(resp)
	_, _ = fmt.Fprintln(w, string(respJson))
}
