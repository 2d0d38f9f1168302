// Package section defines briefing section names and the per-section Result.
//
// A Result is a tagged variant: ok with a typed Payload, error with a message,
// or unavailable with a note when the external tool a section needs is not
// installed. Renderers treat unavailable as informational.
package section
