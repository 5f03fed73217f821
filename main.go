package main

import (
	"bootstrap-machine/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The bootstrap-machine project is a one-shot developer workstation bootstrap tool that:
//   - Reads a flat key/value environment description file (plus a companion
//     version-pin file) describing the developer's identity and pinned tool versions
//   - Refuses to run on anything but the single supported target (a systemd-based
//     Manjaro install), checked before any provisioning action executes
//   - Walks a fixed, ordered catalogue of idempotent provisioning actions:
//     package manager, diff tool, git configuration, container runtime, repo CLI,
//     shell aliases, interactive shell, patched fonts, and local dotfiles
//   - Probes before it acts: every action checks for an existing install or
//     setting first and only performs work when something is absent or mismatched,
//     so re-running the tool against an already provisioned host is a no-op
//
// Error handling strategy:
//   - Each action classifies its own failures as fatal or warning; a fatal
//     failure stops the run immediately (no rollback, a re-run picks up where
//     it left off), a warning is logged and the catalogue continues
//   - The process exits with a non-zero status on any fatal condition so the
//     user is notified of critical failures
//
// There is no persisted state between runs: idempotence comes entirely from
// probing the host, never from a state file.
func main() {
	cmd.Execute()
}
