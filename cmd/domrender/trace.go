package main

import (
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
)

// zapTracer implements tracing.Trace on top of a zap logger, routing the
// traces of the rendering packages into the command's log.
type zapTracer struct {
	log   *zap.SugaredLogger
	level tracing.TraceLevel
}

// Interface tracing.Trace
func (t *zapTracer) P(key string, val interface{}) tracing.Trace {
	return &zapTracer{log: t.log.With(key, val), level: t.level}
}

// Interface tracing.Trace
func (t *zapTracer) Debugf(s string, args ...interface{}) {
	if t.level >= tracing.LevelDebug {
		t.log.Debugf(s, args...)
	}
}

// Interface tracing.Trace
func (t *zapTracer) Infof(s string, args ...interface{}) {
	if t.level >= tracing.LevelInfo {
		t.log.Infof(s, args...)
	}
}

// Interface tracing.Trace
func (t *zapTracer) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

// Interface tracing.Trace
func (t *zapTracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
}

// Interface tracing.Trace
func (t *zapTracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// SetOutput is a no-op: output is determined by the zap core.
func (t *zapTracer) SetOutput(io.Writer) {}

var _ tracing.Trace = &zapTracer{}

// zapSelector hands out one tracer per key, named after the key.
type zapSelector struct {
	sync.Mutex
	base    *zap.Logger
	level   tracing.TraceLevel
	tracers map[string]*zapTracer
}

func newZapSelector(base *zap.Logger, level string) *zapSelector {
	return &zapSelector{
		base:    base,
		level:   traceLevel(level),
		tracers: make(map[string]*zapTracer),
	}
}

// Select returns the tracer for key, e.g. "domrender.cssom".
func (sel *zapSelector) Select(key string) tracing.Trace {
	sel.Lock()
	defer sel.Unlock()
	if t, ok := sel.tracers[key]; ok {
		return t
	}
	log := sel.base
	if name := strings.TrimPrefix(key, "domrender."); name != key {
		log = log.Named(name)
	}
	t := &zapTracer{log: log.Sugar(), level: sel.level}
	sel.tracers[key] = t
	return t
}

// traceLevel maps a log level name to a trace level. Levels above info
// trace errors only.
func traceLevel(level string) tracing.TraceLevel {
	switch strings.ToLower(level) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
