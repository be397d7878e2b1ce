// Package app is the composition root of the TUI. It owns every
// controller, subscribes to the remote service, routes bubbletea
// messages between them, and composites the layered frame.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercier/resound/internal/artwork"
	"github.com/lmercier/resound/internal/config"
	"github.com/lmercier/resound/internal/keymap"
	"github.com/lmercier/resound/internal/notify"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/state"
	"github.com/lmercier/resound/internal/ui/expansion"
	"github.com/lmercier/resound/internal/ui/hint"
	"github.com/lmercier/resound/internal/ui/queuepanel"
	"github.com/lmercier/resound/internal/ui/swipe"
)

// Model is the root application model containing all state.
type Model struct {
	Service  remote.Service
	StateMgr state.Interface
	Cfg      *config.Config

	Expansion  *expansion.Controller
	QueuePanel *queuepanel.Model
	Swipe      *swipe.Controller
	Hint       *hint.Controller

	Keys *keymap.Resolver

	Width  int
	Height int

	ErrorMsg string
	ShowHelp bool

	// Playback position dead reckoning between server reports. The
	// displayed position is position plus elapsed time while playing;
	// an optimistic seek overwrites position until the server answers.
	position   time.Duration
	positionAt time.Time

	notifier     notify.Notifier
	lastNotifyID uint32
	extractor    *artwork.Extractor
	schemes      *artwork.Schemes
	schemesTrack string // track ID the schemes were extracted for

	sub          *remote.Subscription
	hintsStarted bool
	frameLoop    bool // a frame tick is already scheduled
	quitting     bool
}

// New creates the root model. The service is expected to be started by
// the caller; the model only subscribes to it.
func New(cfg *config.Config, svc remote.Service, stateMgr state.Interface, notifier notify.Notifier) *Model {
	m := &Model{
		Service:    svc,
		StateMgr:   stateMgr,
		Cfg:        cfg,
		Expansion:  expansion.New(),
		QueuePanel: queuepanel.New(svc),
		Hint:       hint.New(),
		Keys:       keymap.NewResolver(keymap.All),
		notifier:   notifier,
		extractor:  artwork.NewExtractor(),
		sub:        svc.Subscribe(),
		positionAt: time.Now(),
	}

	gesture := cfg.GetGestureConfig()
	m.Swipe = swipe.New(svc, swipe.Config{
		EdgeMargin:        gesture.EdgeMargin,
		CommitThreshold:   gesture.CommitThreshold,
		VelocityThreshold: gesture.VelocityThreshold,
	})

	// A finished collapse force-closes the queue panel so it never
	// floats over the mini bar.
	m.Expansion.OnCollapsed(func() {
		m.QueuePanel.Reset()
	})

	// A settled expand prefetches the queue so the panel opens onto a
	// fresh snapshot instead of the last poll.
	m.Expansion.OnExpanded(svc.RefreshQueue)

	// The first committed switch means the user has learned the
	// gesture: stop hinting for good and remember the target.
	m.Swipe.OnCommitted(func(target remote.Target) {
		m.Hint.StopHints()
		if err := m.StateMgr.SetOnboardingCompleted(true); err != nil {
			m.reportError("save settings", err)
		}
		m.StateMgr.SaveSelectedTarget(target.ID)
	})

	// Restore last session's target once the server reports in.
	if saved := stateMgr.SelectedTarget(); saved != "" {
		svc.SelectTarget(saved)
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.WatchServiceEvents(), TickCmd())
}

// ExpansionProgress exposes the morph progress for outer chrome.
func (m *Model) ExpansionProgress() float64 {
	return m.Expansion.Progress()
}
