// Package protection implements the startup tamper gate.
//
// Enforce silences stdout and stderr, rejects denied command-line switches
// and checks for an attached debugger (TracerPid on Linux, IsDebuggerPresent
// on Windows). The first failure exits the process with ExitCode; nothing is
// logged. Hosts call it once, before the window starts.
package protection
