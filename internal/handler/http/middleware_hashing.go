package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// withHashing checks the HashSHA256 signature of request bodies and signs
// response bodies with the same key. Requests without the header pass
// through unchecked. It is a no-op when no hash key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if signature := r.Header.Get(utils.HashHeader); signature != "" && r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Msg("failed to read request body")
				http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				log.Warn().Err(ErrBodySignatureMismatch).Str("signature", signature).Send()
				http.Error(w, app.MsgInvalidHash, http.StatusBadRequest)
				return
			}
		}

		sw := &signingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		if sw.buf.Len() > 0 {
			w.Header().Set(utils.HashHeader, h.hasher.SumHex(sw.buf.Bytes()))
		}
		w.WriteHeader(sw.status)
		if _, err := w.Write(sw.buf.Bytes()); err != nil {
			log.Err(err).Msg("failed to write signed response")
		}
	})
}

// signingResponseWriter holds the response back until the body is complete
// so its signature can be sent as a header.
type signingResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (s *signingResponseWriter) WriteHeader(statusCode int) {
	if s.wroteHeader {
		return
	}
	s.status = statusCode
	s.wroteHeader = true
}

func (s *signingResponseWriter) Write(b []byte) (int, error) {
	return s.buf.Write(b)
}
