package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

var sugar = zap.NewNop().Sugar()

// SetLogger задаёт логгер для всех мидлварей пакета.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		sugar = l
	}
}

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	data *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	if w.data.status == 0 {
		w.data.status = http.StatusOK
	}
	size, err := w.ResponseWriter.Write(b)
	w.data.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.data.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// WithLogging пишет в лог метод, путь, статус, размер и длительность запроса.
// Тело запроса не логируется: в нём могут быть секреты.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		data := &responseData{}
		next.ServeHTTP(&loggingResponseWriter{ResponseWriter: w, data: data}, r)
		if data.status == 0 {
			data.status = http.StatusOK
		}
		sugar.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", data.status,
			"size", data.size,
			"duration", time.Since(start),
		)
	})
}
