package network

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/proxy"

	"bookshelf/backend/internal/logger"
)

// ProxyProvider provides proxy configuration.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// StaticProxy is a ProxyProvider with a fixed URL. Empty means direct.
type StaticProxy string

func (p StaticProxy) GetProxyURL(context.Context) string {
	return string(p)
}

// ClientFactory creates HTTP clients for upstream calls.
type ClientFactory struct {
	proxyProvider  ProxyProvider
	testHTTPClient *http.Client // For testing only

	mu         sync.Mutex
	transports map[string]*http.Transport // keyed by proxy URL
}

// NewClientFactory creates a new client factory. A nil provider means no proxy.
func NewClientFactory(proxyProvider ProxyProvider) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = StaticProxy("")
	}
	return &ClientFactory{proxyProvider: proxyProvider}
}

// NewClientFactoryForTest creates a client factory that always hands out client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{
		proxyProvider:  StaticProxy(""),
		testHTTPClient: client,
	}
}

// NewHTTPClient creates an http.Client bounded by timeout, routed through the configured proxy.
func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		client.Transport = f.transportFor(proxyURL)
	}
	return client
}

// GetProxyURL returns the current proxy URL.
func (f *ClientFactory) GetProxyURL(ctx context.Context) string {
	return f.proxyProvider.GetProxyURL(ctx)
}

// transportFor hands out one shared transport per proxy URL so clients
// built per request still reuse pooled connections.
func (f *ClientFactory) transportFor(proxyURL string) *http.Transport {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.transports[proxyURL]; ok {
		return t
	}
	if f.transports == nil {
		f.transports = make(map[string]*http.Transport)
	}
	t := newTransportWithProxy(proxyURL)
	f.transports[proxyURL] = t
	return t
}

// newTransportWithProxy returns a pooled transport routed through proxyURL.
// socks5:// URLs dial through golang.org/x/net/proxy; anything else is an
// HTTP(S) proxy. An unusable URL falls back to a direct transport.
func newTransportWithProxy(proxyURL string) *http.Transport {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.Proxy = nil

	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Host == "" {
		logger.Warn("proxy url unusable, dialing direct", "module", "network", "action", "dial", "resource", "proxy", "result", "failed", "error", err)
		return base
	}

	if !strings.HasPrefix(parsed.Scheme, "socks") {
		base.Proxy = http.ProxyURL(parsed)
		return base
	}

	var auth *proxy.Auth
	if parsed.User != nil {
		password, _ := parsed.User.Password()
		auth = &proxy.Auth{User: parsed.User.Username(), Password: password}
	}
	dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
	if err != nil {
		logger.Warn("socks dialer unavailable, dialing direct", "module", "network", "action", "dial", "resource", "proxy", "result", "failed", "error", err)
		return base
	}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		base.DialContext = cd.DialContext
	} else {
		base.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
	}
	return base
}
