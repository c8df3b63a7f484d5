package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

const defaultCacheTTL = 30 * time.Minute

type LoaderOption func(*Loader)

func WithBaseURL(arg string) LoaderOption {
	return func(l *Loader) {
		l.baseURL = arg
	}
}

// WithCacheDir enables the on-disk session cache in the given
// directory. Without it every expired session is re-fetched upstream.
func WithCacheDir(arg string) LoaderOption {
	return func(l *Loader) {
		l.cacheDir = arg
	}
}

func WithCacheTTL(arg time.Duration) LoaderOption {
	return func(l *Loader) {
		l.ttl = arg
	}
}

func WithHTTPClient(arg *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = arg
	}
}

func WithLoaderLogger(arg *log.Logger) LoaderOption {
	return func(l *Loader) {
		l.l = arg
	}
}

// Loader retrieves session documents from the upstream data source,
// keeping decoded sessions in memory (TTL) and raw documents on disk.
type Loader struct {
	baseURL  string
	cacheDir string
	ttl      time.Duration
	client   *http.Client
	l        *log.Logger
	store    *store
}

func NewLoader(opts ...LoaderOption) *Loader {
	ret := &Loader{
		ttl:    defaultCacheTTL,
		client: &http.Client{Timeout: 60 * time.Second},
		l:      log.Default().Named("session"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.cacheDir != "" {
		if err := os.MkdirAll(ret.cacheDir, 0o755); err != nil {
			ret.l.Warn("could not create session cache dir",
				log.String("dir", ret.cacheDir), log.ErrorField(err))
			ret.cacheDir = ""
		} else {
			ret.l.Info("session cache enabled", log.String("dir", ret.cacheDir))
		}
	}
	if ret.cacheDir == "" {
		ret.l.Warn("session cache is disabled - data fetching will be slower")
	}
	ret.store = newStore(ret.ttl, ret.load, ret.l)
	return ret
}

// Load returns the session for year/gp/sessionName, from memory, disk
// or upstream in that order.
func (l *Loader) Load(year int, gp, sessionName string) (*model.Session, error) {
	return l.store.get(Key{Year: year, GP: gp, Session: sessionName})
}

// Invalidate drops a session from the in-memory cache. The disk cache
// stays; it is the durable copy.
func (l *Loader) Invalidate(year int, gp, sessionName string) {
	l.store.invalidate(Key{Year: year, GP: gp, Session: sessionName})
}

func (l *Loader) load(key Key) (*model.Session, error) {
	if raw, err := l.readCacheFile(key); err == nil {
		if sess, decErr := decodeDocument(raw); decErr == nil {
			l.l.Debug("session loaded from disk cache",
				log.String("key", key.String()))
			return sess, nil
		}
		// stale or corrupt cache entry, fall through to upstream
		l.l.Warn("discarding unreadable cache entry",
			log.String("file", key.Filename()))
	}
	raw, err := l.fetch(key)
	if err != nil {
		return nil, err
	}
	sess, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding session document: %w", err)
	}
	l.writeCacheFile(key, raw)
	l.l.Info("session loaded",
		log.String("event", sess.EventName), log.String("session", sess.Name),
		log.Int("laps", len(sess.Laps)))
	return sess, nil
}

func (l *Loader) fetch(key Key) ([]byte, error) {
	target := fmt.Sprintf("%s/sessions/%d/%s/%s",
		l.baseURL, key.Year, url.PathEscape(key.GP), url.PathEscape(key.Session))
	l.l.Debug("fetching session", log.String("url", target))
	req, err := http.NewRequestWithContext(
		context.Background(), http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching session %s: %w", key.String(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching session %s: upstream status %d",
			key.String(), resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) readCacheFile(key Key) ([]byte, error) {
	if l.cacheDir == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(filepath.Join(l.cacheDir, key.Filename()))
}

// best-effort; a failed write only costs a re-fetch later
func (l *Loader) writeCacheFile(key Key, raw []byte) {
	if l.cacheDir == "" {
		return
	}
	target := filepath.Join(l.cacheDir, key.Filename())
	if err := os.WriteFile(target, raw, 0o644); err != nil {
		l.l.Warn("could not write session cache file",
			log.String("file", target), log.ErrorField(err))
	}
}

func decodeDocument(raw []byte) (*model.Session, error) {
	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}
