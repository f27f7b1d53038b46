package export

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
)

// CopiedWindow is how long the "copied" indicator stays set after a copy.
const CopiedWindow = 2 * time.Second

// Clipboard receives plain text. Tests can substitute a fake.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Indicator is the transient "copied" flag. Each Flip schedules a one-shot
// revert; a later Flip cancels the earlier revert, and a revert that fires
// anyway after being superseded is ignored.
type Indicator struct {
	mu       sync.Mutex
	copied   bool
	gen      uint64
	stop     func() bool
	window   time.Duration
	schedule func(d time.Duration, f func()) (stop func() bool)
}

func NewIndicator() *Indicator {
	return &Indicator{window: CopiedWindow, schedule: afterFunc}
}

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Flip sets the indicator and (re)starts the revert timer.
func (i *Indicator) Flip() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.copied = true
	i.gen++
	gen := i.gen
	if i.stop != nil {
		i.stop()
	}
	i.stop = i.schedule(i.window, func() { i.revert(gen) })
}

func (i *Indicator) revert(gen uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if gen != i.gen {
		return
	}
	i.copied = false
	i.stop = nil
}

// Copied reports whether a copy happened within the last window.
func (i *Indicator) Copied() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.copied
}

// Stop cancels any pending revert and clears the flag.
func (i *Indicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stop != nil {
		i.stop()
		i.stop = nil
	}
	i.gen++
	i.copied = false
}

// Copy writes the worksheet's JSON to the clipboard and flips the indicator
// once the write succeeds.
func Copy(clip Clipboard, ind *Indicator, w worksheet.Worksheet) error {
	text, err := ToClipboardText(w)
	if err != nil {
		return fmt.Errorf("rendering clipboard text: %w", err)
	}
	if err := clip.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	ind.Flip()
	return nil
}
