package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-shooter/constants"
	"github.com/lixenwraith/space-shooter/input"
)

// poller is the part of tcell.Screen the event pump reads from
type poller interface {
	PollEvent() tcell.Event
}

// Events pumps terminal events into held-key state and a quit flag.
// Polling runs on its own goroutine; events are applied on the game loop's
// goroutine when QuitRequested drains the queue at the top of a frame.
type Events struct {
	screen *Screen
	keys   *input.HoldTracker
	queue  chan tcell.Event
	quit   bool
}

// NewEvents creates a pump feeding keys; resize events rescale screen
func NewEvents(screen *Screen, keys *input.HoldTracker) *Events {
	return &Events{
		screen: screen,
		keys:   keys,
		queue:  make(chan tcell.Event, constants.EventQueueSize),
	}
}

// Start launches the polling goroutine. It exits once the screen is finalized.
// crash is invoked with any recovered panic.
func (e *Events) Start(crash func(any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil && crash != nil {
				crash(r)
			}
		}()
		e.poll(e.screen.TCell())
	}()
}

func (e *Events) poll(p poller) {
	for {
		ev := p.PollEvent()
		if ev == nil {
			close(e.queue)
			return
		}
		e.queue <- ev
	}
}

// QuitRequested implements game.QuitSource, applying every queued event first
func (e *Events) QuitRequested() bool {
	for {
		select {
		case ev, ok := <-e.queue:
			if !ok {
				e.quit = true
				return true
			}
			e.handle(ev)
		default:
			return e.quit
		}
	}
}

func (e *Events) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			e.quit = true
			return
		}
		if k, ok := gameKey(ev); ok {
			e.keys.Press(k)
		}
	case *tcell.EventResize:
		if e.screen != nil {
			e.screen.Resize()
			cols, rows := e.screen.Size()
			log.Printf("Terminal resized to %dx%d", cols, rows)
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// gameKey maps arrows, vi h/l, a/d and space onto logical keys
func gameKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a', 'H', 'A':
			return input.KeyLeft, true
		case 'l', 'd', 'L', 'D':
			return input.KeyRight, true
		case ' ':
			return input.KeyShoot, true
		}
	}
	return 0, false
}
