// Package sim advances a [Scene] through fixed substeps of gravitational pull
// toward a single center.
//
// The [Worker] runs in its own goroutine and exchanges scenes with the render
// loop over two channels. Exactly one scene is in flight: the render loop
// sends a [Request] and waits for the stepped scene before sending the next
// one, so a scene is never touched by both sides at once.
//
//	p := sim.Start(sim.NewWorker(sim.DefaultCenter))
//	p.Requests <- sim.Request{Scene: scene}
//	scene = <-p.Results
//
// Closing the request channel stops the worker, which then closes the
// result channel and reports [dynamo.ErrChannelClosed] on Done.
package sim
