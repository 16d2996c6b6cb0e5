package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"KanbanWebService/response"
)

// Logger logs one entry per request.
func Logger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := statusOf(ww)
			entry := log.WithFields(logrus.Fields{
				"request":    r.Method + " " + r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			})
			switch {
			case status >= http.StatusInternalServerError:
				entry.Error("request failed")
			case status >= http.StatusBadRequest:
				entry.Warn("request rejected")
			default:
				entry.Info("request served")
			}
		})
	}
}

// Recoverer turns a panic into a 500 with a generic body. The panic value
// and stack only go to the log.
func Recoverer(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.WithFields(logrus.Fields{
					"request":    r.Method + " " + r.URL.Path,
					"request_id": chimw.GetReqID(r.Context()),
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("recovered from panic")
				response.Fail(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
