package viz

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/arrayvec"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int  // wrap cell output at this column; non-positive means no wrapping
	Colors    bool // colorize live and free slots
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		config.Colors = true
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line width to %d en", config.LineWidth)
	return config
}

// Fprint renders the slot layout of a vector to w, one bracketed cell per
// slot, followed by an occupancy counter. Long cell runs wrap at
// config.LineWidth.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func Fprint[T any](w io.Writer, v *arrayvec.Vec[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	liveColor := color.New(color.FgBlue)
	freeColor := color.New(color.Faint)
	var err error
	col := 0
	emit := func(cell string, c *color.Color) {
		if err != nil {
			return
		}
		width := utf8.RuneCountInString(cell)
		if config.LineWidth > 0 && col > 0 && col+width > config.LineWidth {
			if _, werr := io.WriteString(w, "\n"); werr != nil {
				err = werr
				return
			}
			col = 0
		}
		var werr error
		if config.Colors && c != nil {
			_, werr = c.Fprint(w, cell)
		} else {
			_, werr = io.WriteString(w, cell)
		}
		if werr != nil {
			err = werr
			return
		}
		col += width
	}
	for i := 0; i < v.Cap(); i++ {
		if i < v.Len() {
			emit(fmt.Sprintf("[%v]", v.At(i)), liveColor)
		} else {
			emit("[·]", freeColor)
		}
	}
	if err == nil {
		_, err = fmt.Fprintf(w, " %d/%d\n", v.Len(), v.Cap())
	}
	if err != nil {
		tracer().Errorf("vector rendering: %s", err.Error())
	}
	return err
}

// Slots returns a compact single-line occupancy map of a vector, e.g.
// "[###..] 3/5". Elements are not rendered.
func Slots[T any](v *arrayvec.Vec[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Repeat("#", v.Len()))
	b.WriteString(strings.Repeat(".", v.Cap()-v.Len()))
	b.WriteByte(']')
	fmt.Fprintf(&b, " %d/%d", v.Len(), v.Cap())
	return b.String()
}
