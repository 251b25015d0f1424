package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that accept it. Rendered PDFs and attachment
// downloads are passed through untouched; they are already compressed and
// re-encoding them only burns CPU.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		gzipRW.finish()
		gzipWriterPool.Put(gzipWriter)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter decides between compressing and passing through on the
// first WriteHeader, once the handler has set its Content-Type.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	wroteHeader bool
	passthrough bool
}

// binaryResponse reports content types that gain nothing from gzip.
func binaryResponse(contentType string) bool {
	return strings.HasPrefix(contentType, "application/pdf") ||
		strings.HasPrefix(contentType, "application/octet-stream")
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if binaryResponse(w.Header().Get("Content-Type")) {
			w.passthrough = true
		} else {
			w.Header().Set("Content-Encoding", "gzip")
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

// finish flushes the compressed stream. Nothing to do for passthrough
// responses or when the handler never wrote at all; closing an unused gzip
// writer would append an empty gzip frame to the body.
func (w *gzipResponseWriter) finish() {
	if w.passthrough || !w.wroteHeader {
		return
	}
	w.gzipWriter.Close()
}
