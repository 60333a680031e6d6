// Логирование HTTP-запросов и request id
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-appointments/internal/shared/logger"
)

// RequestIDHeader — заголовок, в котором клиент может прислать свой id запроса.
const RequestIDHeader = "X-Request-ID"

// длиннее не принимаем, чтобы не раздувать логи
const maxRequestIDLen = 64

type ctxKey int

const requestIDKey ctxKey = iota

type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(Status int) {
	w.Status = Status
	w.ResponseWriter.WriteHeader(Status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	Size, err := w.ResponseWriter.Write(b)
	w.Size += Size
	return Size, err
}

// RequestID проставляет X-Request-ID в ответ и в контекст запроса.
// Если клиент прислал свой id, он сохраняется, иначе генерируется uuid v4.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext возвращает id запроса или пустую строку.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggerMiddleware пишет access-лог: метод, uri, статус, размер ответа,
// длительность и id запроса. Тела запросов не логируются, там пароли.
func LoggerMiddleware(loggerHTTP *logger.HTTPLogger) func(http.Handler) http.Handler {
	if loggerHTTP == nil {
		loggerHTTP = logger.NewHTTPLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r)

			duration := time.Since(start).Seconds() * 1000
			loggerHTTP.LogRequest(r.Method, r.RequestURI, wr.Status, wr.Size, duration, RequestIDFromContext(r.Context()))
		})
	}
}
