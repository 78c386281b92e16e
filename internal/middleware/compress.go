package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

const (
	encodingGzip   = "gzip"
	encodingBrotli = "br"
)

// CompressMiddleware сжимает ответ (brotli или gzip) и распаковывает сжатые запросы.
// Если клиент поддерживает оба алгоритма, выбирается brotli.
func CompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Если запрос сжат, распаковываем его
		if contentEncoding := r.Header.Get("Content-Encoding"); contentEncoding != "" {
			if r.Body == nil || r.Body == http.NoBody {
				http.Error(w, "Empty request body", http.StatusBadRequest)
				return
			}

			switch {
			case strings.Contains(contentEncoding, encodingGzip):
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				defer gz.Close()
				r.Body = gz
			case strings.Contains(contentEncoding, encodingBrotli):
				r.Body = io.NopCloser(brotli.NewReader(r.Body))
			default:
				http.Error(w, "Unsupported Content-Encoding", http.StatusUnsupportedMediaType)
				return
			}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
		if encoding == "" {
			next.ServeHTTP(w, r)
			return
		}

		cw := &compressResponseWriter{
			ResponseWriter: w,
			encoding:       encoding,
		}
		next.ServeHTTP(cw, r)

		// Close не откладывается через defer: при панике ответ должен остаться
		// нетронутым, чтобы внешний Recoverer смог отдать 500.
		_ = cw.Close()
	})
}

// negotiateEncoding выбирает алгоритм сжатия по заголовку Accept-Encoding
func negotiateEncoding(acceptEncoding string) string {
	var gzipAccepted bool
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.ReplaceAll(strings.TrimSpace(params), " ", "") == "q=0" {
			continue
		}
		switch strings.TrimSpace(name) {
		case encodingBrotli:
			return encodingBrotli
		case encodingGzip:
			gzipAccepted = true
		}
	}
	if gzipAccepted {
		return encodingGzip
	}
	return ""
}

// compressResponseWriter откладывает отправку заголовков до первой записи тела
// или до Close, поэтому пустой ответ уходит без сжатия.
type compressResponseWriter struct {
	http.ResponseWriter
	encoding string
	writer   io.WriteCloser
	status   int
	started  bool
}

// WriteHeader запоминает код ответа; он уходит клиенту при первой записи или в Close
func (w *compressResponseWriter) WriteHeader(statusCode int) {
	if w.started || w.status != 0 {
		return
	}
	if statusCode < http.StatusOK {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.status = statusCode
}

// Write записывает данные в сжатый поток
func (w *compressResponseWriter) Write(b []byte) (int, error) {
	if !w.started {
		w.start()
	}
	if w.writer == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.writer.Write(b)
}

func (w *compressResponseWriter) start() {
	w.started = true
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if bodyAllowed(w.status) {
		h := w.Header()
		h.Set("Content-Encoding", w.encoding)
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		if w.encoding == encodingBrotli {
			w.writer = brotli.NewWriter(w.ResponseWriter)
		} else {
			w.writer = gzip.NewWriter(w.ResponseWriter)
		}
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// Close завершает сжатый поток. Если тело не писалось, отправляется только код ответа.
func (w *compressResponseWriter) Close() error {
	if !w.started {
		w.started = true
		if w.status != 0 {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return nil
	}
	if w.writer == nil {
		return nil
	}
	return w.writer.Close()
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified
}
