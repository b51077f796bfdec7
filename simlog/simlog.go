// Package simlog carries the module's ambient logging concern: two
// custom slog levels below normal application logging noise, and a
// handful of typed Trace helpers for the access checker and scheduler,
// ported from the teacher's core.Trace/LevelTrace. Logging is opt-in —
// silent unless the caller raises the default logger's level via
// slog.SetLogLoggerLevel or installs a handler with a lower Level.
package simlog

import (
	"context"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders a lower-case reason string (e.g. "conflicting
// poke") as a human-readable title for log output, the same helper
// the teacher's core.emu keeps for presenting opcode names.
var titleCaser = cases.Title(language.English)

const (
	// LevelTrace sits below Info: per-access bookkeeping (conflict
	// rejections, timeout clamps, scheduler hand-offs) that is too
	// chatty for normal runs but useful when chasing a cross-thread race.
	LevelTrace slog.Level = slog.LevelInfo - 2

	// LevelWaveform sits between LevelTrace and Info: a full per-tick
	// dump of signal state, the equivalent of a VCD trace rendered as
	// log records instead of a wave file.
	LevelWaveform slog.Level = slog.LevelInfo - 1
)

// Trace logs msg at LevelTrace with the given key/value pairs.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// Waveform logs msg at LevelWaveform.
func Waveform(msg string, args ...any) {
	slog.Log(context.Background(), LevelWaveform, msg, args...)
}

// Conflict logs a rejected access: which signal, which reason, which
// threads, at which step. Call sites in access pass the formatted
// reason already; this just fixes the record shape.
func Conflict(signal, reason string, step, activeThread, lastThread int) {
	Trace("access conflict",
		slog.String("signal", signal),
		slog.String("reason", titleCaser.String(reason)),
		slog.Int("step", step),
		slog.Int("active_thread", activeThread),
		slog.Int("last_thread", lastThread),
	)
}

// TimeoutClamp logs a step request clamped by a pending timeout.
func TimeoutClamp(requested, granted, idleCycles, timeout int) {
	Trace("step clamped by timeout",
		slog.Int("requested", requested),
		slog.Int("granted", granted),
		slog.Int("idle_cycles", idleCycles),
		slog.Int("timeout", timeout),
	)
}

// SchedulerWake logs a scheduler hand-off decision.
func SchedulerWake(fromThread, toThread, step int, reason string) {
	Trace("scheduler wake",
		slog.Int("from_thread", fromThread),
		slog.Int("to_thread", toThread),
		slog.Int("step", step),
		slog.String("reason", reason),
	)
}

// Deadlock logs a deadlock detection event.
func Deadlock(step int, report string) {
	Trace("deadlock detected",
		slog.Int("step", step),
		slog.String("report", report),
	)
}
