package webengine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minnow-browser/minnow/internal/application/port"
	"github.com/minnow-browser/minnow/internal/cache"
	"github.com/minnow-browser/minnow/internal/config"
	"github.com/minnow-browser/minnow/internal/domain/entity"
	"github.com/minnow-browser/minnow/internal/logging"
)

// faviconCacheSize bounds the per-host favicon cache.
const faviconCacheSize = 128

// Service is the tab registry: it creates, destroys and switches web view
// controllers and relays their per-tab signals. Exactly one tab is current;
// the rest stay suspended. Like the controllers it manages, the service
// runs on the engine event-loop goroutine.
type Service struct {
	engine port.Engine
	deps   Deps
	cfg    *config.Config

	tabs    map[entity.TabID]*WebView
	order   []entity.TabID
	current entity.TabID
	nextTab entity.TabID

	favicons *cache.LRU[string, entity.Image]

	ctx    context.Context
	logger zerolog.Logger

	// OnTabCreated fires after a tab is registered, before it is switched to.
	OnTabCreated func(id entity.TabID)
	// OnTabClosed fires after a tab's controller is destroyed.
	OnTabClosed func(id entity.TabID)
	// OnCurrentChanged fires when the current tab changes.
	OnCurrentChanged func(id entity.TabID)
}

// NewService creates a tab service on engine with the given collaborators.
func NewService(ctx context.Context, engine port.Engine, deps Deps, cfg *config.Config) *Service {
	ctx = logging.WithComponent(ctx, "webengine")
	return &Service{
		engine:   engine,
		deps:     deps,
		cfg:      cfg,
		tabs:     make(map[entity.TabID]*WebView),
		current:  entity.TabIDNone,
		favicons: cache.NewLRU[string, entity.Image](faviconCacheSize),
		ctx:      ctx,
		logger:   *logging.FromContext(ctx),
	}
}

// AddTab creates a new tab. uri is loaded immediately when non-empty. origin
// records the requesting tab for engine-opened windows, TabOriginUnknown
// otherwise. The new tab starts suspended; SwitchToTab activates it.
func (s *Service) AddTab(uri string, origin entity.TabOrigin, desktopMode, private bool) (entity.TabID, error) {
	id := s.nextTab
	s.nextTab++

	cacheModel := port.CacheModelPrimaryBrowser
	if s.cfg.Storage.CacheModel == config.CacheModelViewer {
		cacheModel = port.CacheModelDocumentViewer
	}

	wv, err := NewWebView(s.ctx, s.engine, id, Options{
		Origin:           origin,
		Private:          private,
		DesktopMode:      desktopMode,
		CookiePath:       s.cfg.Storage.CookiePath,
		CacheModel:       cacheModel,
		UserAgentMobile:  s.cfg.Browsing.UserAgentMobile,
		UserAgentDesktop: s.cfg.Browsing.UserAgentDesktop,
		ThumbnailWidth:   s.cfg.Thumbnails.Width,
		ThumbnailHeight:  s.cfg.Thumbnails.Height,
	}, s.deps)
	if err != nil {
		return entity.TabIDNone, fmt.Errorf("failed to add tab: %w", err)
	}

	s.tabs[id] = wv
	s.order = append(s.order, id)
	s.wireTab(wv)

	if uri != "" {
		wv.SetURI(uri)
	}

	s.logger.Debug().Stringer("tab", id).Str("uri", uri).Msg("tab added")
	if s.OnTabCreated != nil {
		s.OnTabCreated(id)
	}
	return id, nil
}

// wireTab connects the service-level relays of one controller.
func (s *Service) wireTab(wv *WebView) {
	id := wv.TabID()

	wv.OnNewWindowRequested = func(uri string) {
		newID, err := s.AddTab(uri, entity.TabOrigin(id), wv.IsDesktopMode(), wv.IsPrivate())
		if err != nil {
			s.logger.Error().Err(err).Stringer("tab", id).Msg("failed to open window request")
			return
		}
		if err := s.SwitchToTab(newID); err != nil {
			s.logger.Error().Err(err).Stringer("tab", newID).Msg("failed to switch to new window")
		}
	}

	wv.OnCloseRequested = func() {
		if err := s.CloseTab(id); err != nil {
			s.logger.Error().Err(err).Stringer("tab", id).Msg("failed to close tab")
		}
	}

	wv.OnFaviconChanged = func(icon entity.Image) {
		if host := extractDomain(wv.URI()); host != "" && !icon.IsEmpty() {
			s.favicons.Set(host, icon)
		}
	}
}

// CloseTab destroys the tab's controller and drops it from the registry. If
// it was current, the most recently ordered remaining tab becomes current.
func (s *Service) CloseTab(id entity.TabID) error {
	wv, ok := s.tabs[id]
	if !ok {
		return ErrTabNotFound
	}

	wv.Destroy()
	delete(s.tabs, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Debug().Stringer("tab", id).Msg("tab closed")
	if s.OnTabClosed != nil {
		s.OnTabClosed(id)
	}

	if s.current == id {
		s.current = entity.TabIDNone
		if n := len(s.order); n > 0 {
			return s.SwitchToTab(s.order[n-1])
		}
	}
	return nil
}

// SwitchToTab suspends the current tab and resumes the named one. Switching
// to the current tab is a no-op.
func (s *Service) SwitchToTab(id entity.TabID) error {
	next, ok := s.tabs[id]
	if !ok {
		return ErrTabNotFound
	}
	if s.current == id {
		return nil
	}

	if prev, ok := s.tabs[s.current]; ok {
		prev.Suspend()
	}
	next.Resume()
	s.current = id

	s.logger.Debug().Stringer("tab", id).Msg("switched tab")
	if s.OnCurrentChanged != nil {
		s.OnCurrentChanged(id)
	}
	return nil
}

// CurrentTab returns the current tab ID, TabIDNone when no tab is open.
func (s *Service) CurrentTab() entity.TabID { return s.current }

// GetTab returns the controller for id.
func (s *Service) GetTab(id entity.TabID) (*WebView, bool) {
	wv, ok := s.tabs[id]
	return wv, ok
}

// TabsCount returns the number of open tabs.
func (s *Service) TabsCount() int { return len(s.tabs) }

// Tabs returns open tab IDs in creation order.
func (s *Service) Tabs() []entity.TabID {
	out := make([]entity.TabID, len(s.order))
	copy(out, s.order)
	return out
}

// TabContents returns switcher summaries for all open tabs in creation order.
func (s *Service) TabContents() []entity.TabContent {
	out := make([]entity.TabContent, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tabs[id].Content())
	}
	return out
}

// Favicon returns the cached favicon for uri's host.
func (s *Service) Favicon(uri string) (entity.Image, bool) {
	return s.favicons.Get(extractDomain(uri))
}

// Close destroys every tab. The service is unusable afterwards.
func (s *Service) Close() {
	for _, id := range s.Tabs() {
		if err := s.CloseTab(id); err != nil {
			s.logger.Error().Err(err).Stringer("tab", id).Msg("failed to close tab during shutdown")
		}
	}
}
