// Package solar classifies instants into the civil-twilight cycle.
// Given coordinates and a point in time it determines which of the four
// solar windows (dawn, day, dusk, night) is current and when the next
// boundary occurs. Boundaries for the previous and next solar day are
// computed alongside today's so instants shortly after midnight classify
// without special-casing. All math operates in UTC.
package solar
