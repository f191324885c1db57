package logging

import (
	"context"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// Discard drops every entry. The dashboard falls back to it when no log file
// is configured, because the terminal belongs to the TUI.
var Discard ports.Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debug(context.Context, string, ...interface{}) {}
func (discardLogger) Info(context.Context, string, ...interface{})  {}
func (discardLogger) Warn(context.Context, string, ...interface{})  {}
func (discardLogger) Error(context.Context, string, ...interface{}) {}

func (d discardLogger) With(...interface{}) ports.Logger { return d }
