package session

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/pkg/model"
)

// Key identifies one session of one event.
type Key struct {
	Year    int
	GP      string
	Session string
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9-]+`)

func (k Key) String() string {
	return fmt.Sprintf("%d %s %s", k.Year, k.GP, k.Session)
}

// Filename is the on-disk cache file name for this key, safe for any
// filesystem.
func (k Key) Filename() string {
	sanitize := func(s string) string {
		return unsafeChars.ReplaceAllString(strings.ToLower(s), "-")
	}
	return fmt.Sprintf("%d_%s_%s.json", k.Year, sanitize(k.GP), sanitize(k.Session))
}

type loaderFunc func(Key) (*model.Session, error)

// store is an in-memory TTL cache over loaded sessions. Entries expire
// after the configured duration and are re-loaded on the next access.
type store struct {
	mutex  sync.Mutex
	items  map[Key]storeItem
	ttl    time.Duration
	loader loaderFunc
	l      *log.Logger
}

type storeItem struct {
	sess    *model.Session
	expires time.Time
}

func newStore(ttl time.Duration, loader loaderFunc, l *log.Logger) *store {
	return &store{
		items:  make(map[Key]storeItem),
		ttl:    ttl,
		loader: loader,
		l:      l,
	}
}

func (s *store) get(key Key) (*model.Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if item, ok := s.items[key]; ok {
		if item.expires.After(time.Now()) {
			return item.sess, nil
		}
		delete(s.items, key)
	}
	return s.load(key)
}

func (s *store) load(key Key) (*model.Session, error) {
	s.l.Debug("loading session", log.String("key", key.String()))
	sess, err := s.loader(key)
	if err != nil {
		s.l.Error("error loading session",
			log.String("key", key.String()), log.ErrorField(err))
		return nil, err
	}
	s.items[key] = storeItem{sess: sess, expires: time.Now().Add(s.ttl)}
	return sess, nil
}

func (s *store) invalidate(key Key) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.items, key)
	s.l.Debug("invalidated session",
		log.String("key", key.String()), log.Int("remaining", len(s.items)))
}
