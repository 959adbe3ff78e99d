package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dtroode/recipebox-server/internal/logger"
)

// Envelope is the JSON body of every response.
type Envelope struct {
	Data  any    `json:"data"`
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
}

// Response is the successful outcome of a HandlerFunc.
type Response struct {
	Status int
	Data   any
	Msg    string
}

// OK builds a 200 response.
func OK(data any, msg string) *Response {
	return &Response{Status: http.StatusOK, Data: data, Msg: msg}
}

// Created builds a 201 response.
func Created(data any, msg string) *Response {
	return &Response{Status: http.StatusCreated, Data: data, Msg: msg}
}

// HandlerFunc handles a request and returns either a response or an error.
// It never writes to the client itself.
type HandlerFunc func(r *http.Request) (*Response, error)

// Middleware wraps a HandlerFunc.
type Middleware func(HandlerFunc) HandlerFunc

// Chain composes middlewares; the first one is the outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(h HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}

var errHandlerPanic = errors.New("handler panicked")

// Dispatcher adapts a HandlerFunc to net/http. The response is written
// only after the HandlerFunc and all its middlewares have returned.
type Dispatcher struct {
	logger *logger.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(logger *logger.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Handle returns an http.HandlerFunc running h.
func (d *Dispatcher) Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := d.invoke(h, r)
		if err != nil {
			d.writeError(w, r, err)
			return
		}
		if resp == nil {
			resp = OK(nil, "")
		}
		d.write(w, resp.Status, Envelope{Data: resp.Data, Msg: resp.Msg})
	}
}

func (d *Dispatcher) invoke(h HandlerFunc, r *http.Request) (resp *Response, err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		d.logger.Error("HTTP dispatcher: handler panicked",
			"method", r.Method,
			"path", r.URL.Path,
			"panic", fmt.Sprint(rec),
			"stack", string(debug.Stack()))
		resp, err = nil, errHandlerPanic
	}()

	return h(r)
}

func (d *Dispatcher) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := classify(err)

	if apiErr.status >= http.StatusInternalServerError {
		d.logger.Error("HTTP dispatcher: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", apiErr.status,
			"error", err.Error())
	} else {
		d.logger.Debug("HTTP dispatcher: request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", apiErr.status,
			"error", err.Error())
	}

	for key, value := range apiErr.headers {
		w.Header().Set(key, value)
	}
	d.write(w, apiErr.status, Envelope{Data: nil, Error: true, Msg: apiErr.message})
}

func (d *Dispatcher) write(w http.ResponseWriter, status int, body Envelope) {
	payload, err := json.Marshal(body)
	if err != nil {
		d.logger.Error("HTTP dispatcher: failed to encode response", "error", err.Error())
		status = http.StatusInternalServerError
		payload, _ = json.Marshal(Envelope{Error: true, Msg: msgInternal})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
