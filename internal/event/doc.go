// Package event provides a pub-sub bus that reports generation progress to
// interested front ends without coupling them to the pipeline.
//
// The pipeline publishes a [StageChangedEvent] on every stage transition
// (validate, compose, verify, render, then done or failed) and one
// [GenerationCompletedEvent] per run. The interactive form and the CLI's
// verbose mode subscribe to these.
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers are called synchronously on the
// publishing goroutine; a panicking handler is logged and does not prevent
// delivery to the others.
//
// # Usage
//
//	bus := event.NewBus(logger)
//	bus.Subscribe(event.TypeStageChanged, func(e event.Event) {
//	    sc := e.(event.StageChangedEvent)
//	    fmt.Println(sc.Current)
//	})
package event
