package client

import (
	"log"

	"tty-invaders/internal/models"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// TermboxUI draws frames with termbox and serves keypresses to the session.
// A single goroutine polls termbox and hands events over a buffered channel,
// so Poll never blocks the tick loop.
type TermboxUI struct {
	glyphs models.Glyphs
	events chan termbox.Event
	done   chan struct{}
}

// NewTermboxUI creates a new TermboxUI using glyphs to pick cell colours.
func NewTermboxUI(glyphs models.Glyphs) *TermboxUI {
	return &TermboxUI{
		glyphs: glyphs,
		events: make(chan termbox.Event, 16),
		done:   make(chan struct{}),
	}
}

// Init initializes the termbox screen and starts the event pump.
func (ui *TermboxUI) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	go ui.pump()
	return nil
}

// Close stops the event pump and restores the terminal.
func (ui *TermboxUI) Close() {
	select {
	case <-ui.done:
	default:
		// Interrupt blocks until PollEvent picks it up, so only send it
		// while the pump is still running.
		termbox.Interrupt()
		<-ui.done
	}
	termbox.Close()
}

func (ui *TermboxUI) pump() {
	defer close(ui.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			log.Printf("Termbox event error: %v", ev.Err)
			return
		case termbox.EventKey:
			select {
			case ui.events <- ev:
			default:
				// Nobody is reading fast enough, drop the key.
			}
		}
	}
}

// Poll returns a pending keypress, if any, without blocking.
func (ui *TermboxUI) Poll() (Key, bool) {
	select {
	case ev := <-ui.events:
		return toKey(ev), true
	default:
		return Key{}, false
	}
}

// Wait blocks until a key is pressed. If the event pump has stopped it
// returns an Esc key so callers never hang.
func (ui *TermboxUI) Wait() Key {
	select {
	case ev := <-ui.events:
		return toKey(ev)
	case <-ui.done:
		return Key{Code: KeyEsc}
	}
}

func toKey(ev termbox.Event) Key {
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return Key{Code: KeyArrowLeft}
	case termbox.KeyArrowRight:
		return Key{Code: KeyArrowRight}
	case termbox.KeySpace:
		return Key{Code: KeySpace}
	case termbox.KeyEnter:
		return Key{Code: KeyEnter}
	case termbox.KeyEsc:
		return Key{Code: KeyEsc}
	}
	if ev.Ch != 0 {
		return Key{Code: KeyRune, Ch: ev.Ch}
	}
	return Key{Code: KeyOther}
}

// Draw clears the screen and prints a frame.
func (ui *TermboxUI) Draw(f Frame) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for y, line := range f.Lines {
		x := 1
		for _, r := range line {
			termbox.SetCell(x, y+1, r, ui.colour(r), termbox.ColorDefault)
			x += runewidth.RuneWidth(r)
		}
	}
	return termbox.Flush()
}

func (ui *TermboxUI) colour(r rune) termbox.Attribute {
	switch r {
	case ui.glyphs.Rune(models.CellPlayer):
		return termbox.ColorGreen | termbox.AttrBold
	case ui.glyphs.Rune(models.CellInvaderA), ui.glyphs.Rune(models.CellInvaderB):
		return termbox.ColorRed
	case ui.glyphs.Rune(models.CellPlayerShot), ui.glyphs.Rune(models.CellInvaderShot):
		return termbox.ColorYellow
	case border:
		return termbox.ColorCyan
	}
	return termbox.ColorWhite
}

// Message clears the screen and shows lines centered horizontally.
func (ui *TermboxUI) Message(lines ...string) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	w, h := termbox.Size()
	top := (h - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range lines {
		ui.DisplayStaticText(centerOffset(w, line), top+i, line, termbox.ColorWhite, termbox.ColorDefault)
	}
	return termbox.Flush()
}

// DisplayStaticText draws text at the given coordinates without flushing.
func (ui *TermboxUI) DisplayStaticText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}

// ShowStartScreen shows the title screen and waits for ENTER (start) or
// ESC (leave). It reports whether the game should start.
func (ui *TermboxUI) ShowStartScreen(keys models.KeySpec) bool {
	if err := ui.Message(StartScreenLines(keys)...); err != nil {
		log.Printf("Failed to draw start screen: %v", err)
		return false
	}
	for {
		switch k := ui.Wait(); k.Code {
		case KeyEnter:
			return true
		case KeyEsc:
			return false
		}
	}
}

// centerOffset returns the column at which text is centered in width cells.
func centerOffset(width int, text string) int {
	x := (width - runewidth.StringWidth(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}
