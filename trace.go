package pathfit

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pathfit'
func tracer() tracing.Trace {
	return tracing.Select("pathfit")
}
