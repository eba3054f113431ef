package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Soumo04/TalentNest/internal/portal"
)

// LinePixels is the height of one terminal line in the units used for
// section bounds, so portal.ActivationMargin keeps its page meaning.
const LinePixels = 20

const clearScreen = "\033[H\033[2J"

// View renders portal state to a terminal
type View struct {
	mu       sync.Mutex
	out      io.Writer
	handlers portal.Handlers
	sections []portal.Section
	live     bool
	height   int
	held     bool

	state  portal.State
	lines  []string
	bounds []portal.SectionBounds
	offset int
}

// Option configures a View
type Option func(*View)

// WithSections limits the page to the given sections
func WithSections(sections ...portal.Section) Option {
	return func(v *View) {
		v.sections = sections
	}
}

// Live redraws the screen on every render, showing height page lines
func Live(height int) Option {
	return func(v *View) {
		v.live = true
		if height > 0 {
			v.height = height
		}
	}
}

// New creates a terminal view writing to out
func New(out io.Writer, opts ...Option) *View {
	v := &View{
		out:      out,
		sections: portal.Sections(),
		height:   24,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Bind stores the controller's handlers
func (v *View) Bind(h portal.Handlers) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers = h
}

// Handlers returns the bound handlers
func (v *View) Handlers() portal.Handlers {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.handlers
}

// Render lays out the page and, in live mode, redraws it
func (v *View) Render(s portal.State) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = s
	v.layout()
	if v.live && !v.held {
		v.draw()
	}
}

// Suspend stops redraws so the caller can write to the same output, e.g. an
// input prompt. Renders still update the page and are shown on Resume.
func (v *View) Suspend() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.held = true
}

// Resume re-enables redraws and draws the latest state
func (v *View) Resume() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.held = false
	if v.live {
		v.draw()
	}
}

// ScrollTo moves the viewport to the top of section
func (v *View) ScrollTo(section portal.Section) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, b := range v.bounds {
		if b.Section == section {
			v.offset = v.clamp(b.Top / LinePixels)
			break
		}
	}
	if v.live && !v.held {
		v.draw()
	}
}

// ScrollBy moves the viewport by delta lines and reports the new offset to
// the scroll handler. It must be called from the input loop, never from
// inside Render.
func (v *View) ScrollBy(delta int) {
	v.mu.Lock()
	v.offset = v.clamp(v.offset + delta)
	offset := v.offset * LinePixels
	bounds := append([]portal.SectionBounds(nil), v.bounds...)
	handler := v.handlers.Scrolled
	if v.live && !v.held {
		v.draw()
	}
	v.mu.Unlock()

	if handler != nil {
		handler(offset, bounds)
	}
}

// Bounds returns the section positions of the last layout
func (v *View) Bounds() []portal.SectionBounds {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]portal.SectionBounds(nil), v.bounds...)
}

// Offset returns the first visible page line
func (v *View) Offset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// Flush writes the whole page and the current notification once
func (v *View) Flush() {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintln(v.out, strings.Join(v.lines, "\n"))
	if toast := RenderToast(v.state.Toast); toast != "" {
		fmt.Fprintln(v.out)
		fmt.Fprintln(v.out, toast)
	}
}

func (v *View) layout() {
	v.lines = v.lines[:0]
	v.bounds = v.bounds[:0]
	for _, section := range v.sections {
		v.bounds = append(v.bounds, portal.SectionBounds{
			Section: section,
			Top:     len(v.lines) * LinePixels,
		})
		v.lines = append(v.lines, strings.Split(RenderSection(section, v.state), "\n")...)
	}
	v.offset = v.clamp(v.offset)
}

func (v *View) clamp(offset int) int {
	limit := len(v.lines) - v.height
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (v *View) draw() {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(RenderNav(v.state.Active))
	b.WriteString("\n")

	end := v.offset + v.height
	if end > len(v.lines) {
		end = len(v.lines)
	}
	b.WriteString(strings.Join(v.lines[v.offset:end], "\n"))
	b.WriteString("\n\n")

	if toast := RenderToast(v.state.Toast); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("1-4 section · n/p scroll · a <n> apply · s submit · c check · u update · r reload · q quit"))
	b.WriteString("\n> ")
	fmt.Fprint(v.out, b.String())
}
