package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

// ratelimit throttles requests by blocking on a per-client ticker.
// Clients are spread across buckets by a hash of their address.
type ratelimit struct {
	buckets []*time.Ticker
}

func newRatelimit(buckets int, period time.Duration) *ratelimit {
	b := make([]*time.Ticker, buckets)
	for i := 0; i < buckets; i++ {
		b[i] = time.NewTicker(period)
	}

	return &ratelimit{
		buckets: b,
	}
}

func (l *ratelimit) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bucket int
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			h := fnv.New64()
			io.WriteString(h, host)
			bucket = int(h.Sum64() % uint64(len(l.buckets)))
		}

		<-l.buckets[bucket].C

		next.ServeHTTP(w, r)
	})
}
