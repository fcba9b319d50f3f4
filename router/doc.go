// Package router dispatches the shared vendor command buffer: an
// identity/diagnostics responder, the LED streaming engine, and the event
// log reader. Every poll also runs the battery charge edge detector,
// pushing unsolicited battery reports on state changes.
//
// Selectors the router does not recognize are reported as unclaimed so the
// original firmware's own command handling still runs.
package router
