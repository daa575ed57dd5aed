// Package instrument attaches Prometheus metrics and OpenTelemetry spans
// to sorted lists through the allocator and callback hooks.
//
//	alloc := instrument.NewAllocator[int]("jobs", nil)
//	list, err := sortedlist.New(16, sortedlist.OrderedBehavior[int](),
//	    sortedlist.WithAllocator[int](alloc),
//	    sortedlist.WithCallbacks[int](sortedlist.Chain(
//	        instrument.Callbacks("jobs"),
//	        instrument.Traced(ctx, nil, "jobs"),
//	    )),
//	    sortedlist.WithName[int]("jobs"))
package instrument
