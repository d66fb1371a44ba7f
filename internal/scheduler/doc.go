// Package scheduler decides when the next configured trigger fires.
// It wraps one of two event sources — automatic (solar events at a
// location) or manual (fixed daily times) — behind a single
// next-event-at query, and layers the fire decision on top: a trigger
// fires when its target instant falls inside a 10-second tolerance
// window of now and has not already been recorded in the EventCache.
//
// This is a coarse polling scheduler, not a precise timer. The caller
// polls ShouldTrigger and sleeps per PollDelay; the tolerance window is
// the acceptable triggering jitter. A TriggerSource holds an immutable
// snapshot of its configuration variant and is rebuilt on every reload.
package scheduler
