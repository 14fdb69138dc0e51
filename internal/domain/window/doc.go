// Package window drives the native window lifecycle.
//
// States move forward only:
//
//	Initializing -> Running -> Closing -> Terminated
//
// Running begins when the event loop starts; Closing when it returns, either
// because the user closed the window or because the context was cancelled;
// Terminated once the surface is destroyed. A failed surface construction
// goes straight to Terminated and is returned as an error.
//
// Geometry: resizable=false pins the window with HintFixed. Otherwise min and
// max bounds are applied before the initial size. Frameless, transparent and
// always-on-top have no counterpart on the web surface and are logged and
// ignored.
package window
