// Package pipeline runs one generation end to end: it validates the request,
// formats the display number, composes the expressions, writes the
// verification checklist and renders the image.
//
// # Stages
//
// Every run gets a run id (attached to all its log lines) and its own random
// source. Stage transitions are published on an optional [event.Bus] as
// validate, compose, verify, render, then done or failed. Validation and
// composition errors are returned before any external tool is started. A
// verification file that cannot be written is logged and counted but does
// not fail the run.
//
// # Usage
//
//	g, err := pipeline.NewGenerator(pipeline.Config{
//	    Config: cfg,
//	    Logger: logger,
//	})
//	res, err := g.Generate(ctx, pipeline.Request{
//	    CallingCode: 1,
//	    LocalNumber: "5551234567",
//	    Signature:   "Random",
//	})
//	fmt.Println(res.ImagePath)
package pipeline
