package input

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/engine"
)

// Poller is the blocking event side of a tcell screen
type Poller interface {
	PollEvent() tcell.Event
}

// raw is one terminal event stamped on arrival
type raw struct {
	key    engine.Key
	at     time.Time
	resize bool
}

// Source polls the terminal on a background goroutine and hands ordered key events
// to the game loop through Drain
type Source struct {
	poller   Poller
	table    *KeyTable
	clock    engine.Clock
	tracker  *HoldTracker
	onResize func()

	rawCh   chan raw
	once    sync.Once
	done    chan struct{}
	dropped int
	mu      sync.Mutex
}

// NewSource creates an input source; onResize runs on the draining goroutine
func NewSource(poller Poller, clock engine.Clock, initial, repeat time.Duration, onResize func()) *Source {
	return &Source{
		poller:   poller,
		table:    DefaultKeyTable(),
		clock:    clock,
		tracker:  NewHoldTracker(initial, repeat),
		onResize: onResize,
		rawCh:    make(chan raw, constants.InputQueueSize),
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine once
func (s *Source) Start() {
	s.once.Do(func() {
		core.Go(s.poll)
	})
}

// Done is closed when the poller reports the screen finalized
func (s *Source) Done() <-chan struct{} {
	return s.done
}

// Dropped returns the number of events lost to a full queue
func (s *Source) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// ResetHolds drops every tracked hold and its pending release
// A key still held afterwards reports KeyDown again on its next repeat
func (s *Source) ResetHolds() {
	s.tracker.ReleaseAll()
	s.tracker.Flush()
}

func (s *Source) poll() {
	defer close(s.done)
	for {
		ev := s.poller.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			s.push(raw{key: s.table.Translate(e), at: s.clock.Now()})
		case *tcell.EventResize:
			s.push(raw{resize: true, at: s.clock.Now()})
		}
	}
}

func (s *Source) push(r raw) {
	select {
	case s.rawCh <- r:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		log.Printf("input: queue full, dropped event")
	}
}

// Drain returns every event observed since the previous call, in occurrence order,
// followed by releases of holds that expired by now
func (s *Source) Drain() []engine.Event {
	for drained := false; !drained; {
		select {
		case r := <-s.rawCh:
			s.apply(r)
		default:
			drained = true
		}
	}
	s.tracker.Expire(s.clock.Now())
	return s.tracker.Flush()
}

func (s *Source) apply(r raw) {
	if r.resize {
		if s.onResize != nil {
			s.onResize()
		}
		return
	}
	// Holds that lapsed before this press release first
	s.tracker.Expire(r.at)
	s.tracker.Press(r.key, r.at)
}
