package common

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to the global core tracer, installing a log-based tracer if none
// has been configured yet.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}
