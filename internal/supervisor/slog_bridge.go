// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package supervisor

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// slogBridge forwards slog records into a zerolog logger so suture's
// lifecycle events share the application's log stream and format.
type slogBridge struct {
	logger zerolog.Logger
	attrs  []slog.Attr
}

func newSlogBridge(logger zerolog.Logger) *slogBridge {
	return &slogBridge{logger: logger.With().Str("component", "supervisor").Logger()}
}

func (b *slogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return b.logger.GetLevel() <= mapLevel(level)
}

func (b *slogBridge) Handle(_ context.Context, record slog.Record) error {
	event := b.logger.WithLevel(mapLevel(record.Level))
	for _, attr := range b.attrs {
		event = appendAttr(event, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = appendAttr(event, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (b *slogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(b.attrs)+len(attrs))
	merged = append(merged, b.attrs...)
	merged = append(merged, attrs...)
	return &slogBridge{logger: b.logger, attrs: merged}
}

func (b *slogBridge) WithGroup(name string) slog.Handler {
	// Groups are flattened; suture's events are shallow enough that prefixing
	// keys is not worth the bookkeeping.
	return b
}

func appendAttr(event *zerolog.Event, attr slog.Attr) *zerolog.Event {
	return event.Interface(attr.Key, attr.Value.Any())
}

func mapLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
