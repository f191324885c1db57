// Package clipboard writes plain text to the user's clipboard, preferring the
// operating system clipboard and falling back to the OSC 52 terminal escape.
package clipboard

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// Backend names used in logs and errors.
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

var errUnsupported = errors.New("no system clipboard utility available")

// System writes through the platform clipboard (pbcopy, xclip, wl-copy,
// the Windows API...).
type System struct{}

func (System) WriteText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return deverrors.NewClipboardError(BackendSystem, errUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return deverrors.NewClipboardError(BackendSystem, err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard. Delivery cannot be
// confirmed; a write only fails if the output is unusable.
type OSC52 struct {
	out *termenv.Output
}

// NewOSC52 writes escape sequences to w, or stderr when w is nil.
func NewOSC52(w io.Writer) *OSC52 {
	if w == nil {
		w = os.Stderr
	}
	return &OSC52{out: termenv.NewOutput(w)}
}

func (o *OSC52) WriteText(_ context.Context, text string) error {
	if o == nil || o.out == nil {
		return deverrors.NewClipboardError(BackendOSC52, errors.New("no terminal output"))
	}
	o.out.Copy(text)
	return nil
}

type namedClipboard struct {
	name string
	ports.Clipboard
}

// Chain tries each clipboard in order until one accepts the text.
type Chain struct {
	backends []namedClipboard
	logger   ports.Logger
}

// NewChain builds an empty chain; add backends with Then.
func NewChain(logger ports.Logger) *Chain {
	return &Chain{logger: logger}
}

// Then appends a backend.
func (c *Chain) Then(name string, cb ports.Clipboard) *Chain {
	c.backends = append(c.backends, namedClipboard{name: name, Clipboard: cb})
	return c
}

// New returns the default chain: the system clipboard, then OSC 52 on
// stderr unless disableOSC52 is set.
func New(logger ports.Logger, disableOSC52 bool) *Chain {
	chain := NewChain(logger).Then(BackendSystem, System{})
	if !disableOSC52 {
		chain.Then(BackendOSC52, NewOSC52(os.Stderr))
	}
	return chain
}

func (c *Chain) WriteText(ctx context.Context, text string) error {
	var errs []error
	for _, b := range c.backends {
		err := b.WriteText(ctx, text)
		if err == nil {
			if c.logger != nil {
				c.logger.Debug(ctx, "copied to clipboard", "backend", b.name, "chars", len([]rune(text)))
			}
			return nil
		}
		if c.logger != nil {
			c.logger.Warn(ctx, "clipboard backend failed", "backend", b.name, "error", err)
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return deverrors.NewClipboardError("", errors.New("no clipboard backend configured"))
	}
	return deverrors.NewClipboardError("", errors.Join(errs...))
}

var (
	_ ports.Clipboard = System{}
	_ ports.Clipboard = (*OSC52)(nil)
	_ ports.Clipboard = (*Chain)(nil)
)
