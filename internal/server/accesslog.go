package server

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// accessTimeLayout renders timestamps like 17/Oct/2026 09:04:05
const accessTimeLayout = "02/Jan/2006 15:04:05"

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(p)
}

// logRequests writes one line per request to w after h has answered:
//
//	127.0.0.1 - - [17/Oct/2026 09:04:05] "GET / HTTP/1.1" 200 -
func logRequests(w io.Writer, now func() time.Time, h http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: rw}
		h.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		fmt.Fprintln(w, formatAccessLine(r, rec.status, now()))
	})
}

func formatAccessLine(r *http.Request, status int, t time.Time) string {
	return fmt.Sprintf("%s - - [%s] \"%s %s %s\" %d -",
		clientHost(r.RemoteAddr),
		t.Format(accessTimeLayout),
		r.Method, r.RequestURI, r.Proto,
		status)
}

// clientHost strips the port from a remote address
func clientHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
