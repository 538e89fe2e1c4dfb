package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
	"github.com/rjcampbel/DisneyMagic/internal/tui/styles"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r\033[K"

// progressObserver draws a one-line spinner while the catalog builds. The
// build is synchronous, so the spinner advances once per finished row.
type progressObserver struct {
	w       io.Writer
	enabled bool
	frame   int
}

func newProgressObserver(f *os.File) *progressObserver {
	return &progressObserver{w: f, enabled: term.IsTerminal(int(f.Fd()))}
}

// OnProgress implements domain.BuildObserver
func (p *progressObserver) OnProgress(e domain.BuildProgress) {
	if !p.enabled || e.Done {
		return
	}
	frame := styles.SpinnerStyle.Render(styles.SpinnerFrames[p.frame%len(styles.SpinnerFrames)])
	p.frame++
	fmt.Fprintf(p.w, "%s%s Loading catalog %d/%d %s", clearSpinnerLine, frame, e.Index+1, e.Total,
		styles.DimStyle.Render(e.Title))
}

func (p *progressObserver) clear() {
	if p.enabled {
		fmt.Fprint(p.w, clearSpinnerLine)
	}
}
