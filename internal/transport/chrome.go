// Package transport provides optional http.RoundTripper implementations for
// the remote adapter.
package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const alpnH2 = "h2"

// errHTTP1Only is returned by the h2 dial when the server picked another
// protocol during the handshake. The request has not been written yet.
var errHTTP1Only = errors.New("server did not negotiate h2")

// NewChromeTransport returns a round tripper that presents a Chrome TLS
// fingerprint (uTLS HelloChrome_Auto).
//
// Each request is sent exactly once. A host is spoken to over HTTP/2 unless
// its TLS handshake selects another protocol; that host is then remembered
// and served over HTTP/1.1. dialTimeout bounds the TCP connect, the request
// deadline stays with the HTTP client.
func NewChromeTransport(dialTimeout time.Duration) http.RoundTripper {
	return newChromeTransport(dialTimeout, &utls.Config{})
}

func newChromeTransport(dialTimeout time.Duration, base *utls.Config) *chromeTransport {
	t := &chromeTransport{
		dialer: &net.Dialer{Timeout: dialTimeout},
		base:   base,
	}
	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return t.dial(ctx, network, addr, true)
		},
	}
	t.h1 = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return t.dial(ctx, network, addr, false)
		},
	}

	return t
}

type chromeTransport struct {
	dialer *net.Dialer
	base   *utls.Config

	h2 *http2.Transport
	h1 *http.Transport

	// host:port of servers that answered the handshake without h2
	http1Hosts sync.Map
}

// RoundTrip implements http.RoundTripper. Plain http requests skip the TLS
// path entirely.
func (t *chromeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}
	if _, ok := t.http1Hosts.Load(req.URL.Host); ok {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil || !errors.Is(err, errHTTP1Only) {
		return resp, err
	}

	// the h2 attempt stopped at the handshake, so the request is still unsent
	t.http1Hosts.Store(req.URL.Host, struct{}{})
	return t.h1.RoundTrip(req)
}

// CloseIdleConnections releases pooled connections of both transports.
func (t *chromeTransport) CloseIdleConnections() {
	t.h2.CloseIdleConnections()
	t.h1.CloseIdleConnections()
}

func (t *chromeTransport) dial(ctx context.Context, network, addr string, requireH2 bool) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := t.dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	cfg := t.base.Clone()
	cfg.ServerName = host
	tlsConn := utls.UClient(conn, cfg, utls.HelloChrome_Auto)
	if err = tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	if requireH2 && tlsConn.ConnectionState().NegotiatedProtocol != alpnH2 {
		_ = tlsConn.Close()
		return nil, errHTTP1Only
	}

	return tlsConn, nil
}
