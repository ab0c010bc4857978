package progressbar

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/odpf/console/internal/utils"
)

const progressBarRefreshDuration = 120 * time.Millisecond

// ProgressBar shows a spinner on stderr while a request runs
type ProgressBar struct {
	spinner *spinner.Spinner

	mu     sync.Mutex
	writer io.Writer
}

// NewProgressBar initializes default progress bar
func NewProgressBar() *ProgressBar {
	writer := io.Discard
	disableProgressIndicator := strings.ToLower(os.Getenv("CONSOLE_PROGRESS_INDICATOR"))
	if utils.IsTerminal(os.Stderr) && disableProgressIndicator != "false" {
		writer = os.Stderr
	}
	return NewProgressBarWithWriter(writer)
}

// NewProgressBarWithWriter initializes progress bar with writer
func NewProgressBarWithWriter(w io.Writer) *ProgressBar {
	return &ProgressBar{
		writer: w,
	}
}

// Start starts the spinner with label, a running spinner only gets its label replaced
func (p *ProgressBar) Start(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.spinner != nil {
		if label == "" {
			p.spinner.Suffix = ""
		} else {
			p.spinner.Suffix = " " + label
		}
		return
	}
	sp := spinner.New(spinner.CharSets[11], progressBarRefreshDuration,
		spinner.WithWriter(p.writer), spinner.WithColor("fgCyan"))
	if label != "" {
		sp.Suffix = " " + label
	}
	sp.Start()
	p.spinner = sp
}

// Stop stops progress bar
func (p *ProgressBar) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		p.spinner.Stop()
	}
	p.spinner = nil
}

// IsRunning reports whether a spinner is shown
func (p *ProgressBar) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spinner != nil
}
