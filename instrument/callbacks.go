package instrument

import (
	"context"

	"github.com/amp-labs/lazylist/sortedlist"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sortedlist"

// Callbacks returns lifecycle hooks that count clears and frees under name.
func Callbacks(name string) *sortedlist.Callbacks {
	name = sanitizeName(name)

	clears.WithLabelValues(name).Add(0)
	frees.WithLabelValues(name).Add(0)

	return &sortedlist.Callbacks{
		AfterClear: func() {
			clears.WithLabelValues(name).Inc()
		},
		AfterFree: func() {
			frees.WithLabelValues(name).Inc()
		},
	}
}

// Traced returns lifecycle hooks that record a span for every clear
// ("sortedlist.clear") and destroy ("sortedlist.free"), as children of the
// span in ctx. A nil tracer uses the global provider.
//
// The hooks keep the open span between the Before and After call, so a
// traced Callbacks value must only be attached to lists used from one
// goroutine at a time.
func Traced(ctx context.Context, tracer trace.Tracer, name string) *sortedlist.Callbacks {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	var clearSpan, freeSpan trace.Span

	start := func(spanName string) trace.Span {
		_, span := tracer.Start(ctx, spanName) //nolint:spancheck // ended by the matching After hook
		span.SetAttributes(attribute.String("list", sanitizeName(name)))

		return span
	}

	end := func(span *trace.Span) {
		if *span == nil {
			return
		}

		(*span).End()
		*span = nil
	}

	return &sortedlist.Callbacks{
		BeforeClear: func() {
			end(&clearSpan)
			clearSpan = start("sortedlist.clear")
		},
		AfterClear: func() {
			end(&clearSpan)
		},
		BeforeFree: func() {
			end(&freeSpan)
			freeSpan = start("sortedlist.free")
		},
		AfterFree: func() {
			end(&freeSpan)
		},
	}
}
