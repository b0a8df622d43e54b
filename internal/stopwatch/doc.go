// Package stopwatch implements the elapsed-time state machine behind lapwatch.
//
// A Controller moves between Idle, Running and Paused, records lap splits and
// drives a per-frame render loop while running. It never touches a screen or
// a clock directly: the host supplies a Clock, a Renderer and a Scheduler and
// feeds user input through Dispatch. All methods are expected to be called
// from a single goroutine, the same one that runs scheduled frame callbacks.
package stopwatch
