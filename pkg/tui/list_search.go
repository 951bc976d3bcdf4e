package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the input quiet period before a search is applied
const DefaultDebounce = 500 * time.Millisecond

// searchDebouncedMsg fires once the quiet period after a keystroke elapses
type searchDebouncedMsg struct {
	tag   int
	value string
}

// SearchDebouncer turns a stream of keystrokes into a single settled value.
// Every Trigger supersedes the ticks scheduled before it, so only the tick
// of the latest keystroke is accepted.
type SearchDebouncer struct {
	delay time.Duration
	tag   int
}

// NewSearchDebouncer creates a debouncer; a non-positive delay uses DefaultDebounce
func NewSearchDebouncer(delay time.Duration) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &SearchDebouncer{delay: delay}
}

// Delay returns the quiet period
func (d *SearchDebouncer) Delay() time.Duration {
	return d.delay
}

// Trigger records a new value and schedules its tick
func (d *SearchDebouncer) Trigger(value string) tea.Cmd {
	d.tag++
	tag := d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchDebouncedMsg{tag: tag, value: value}
	})
}

// Accept reports whether msg belongs to the latest Trigger
func (d *SearchDebouncer) Accept(msg searchDebouncedMsg) bool {
	return msg.tag == d.tag
}
