// Package workflows provides high-level orchestration for mentahan.
//
// The cmd/ package stays a thin layer that loads settings, builds the
// collaborators and calls a workflow. Workflows own the sequencing and the
// error policy.
//
// # Setup
//
// System.Run performs the startup sequence:
//
//  1. Clear the screen (best effort)
//  2. Print the logo
//  3. Record "SystemSetup started successfully." in the log file
//
// A cancelled context is treated as a user interrupt and logged as a
// WARNING. Any other error, including a panic in a collaborator, is logged
// as an ERROR. Both are shown on the console and absorbed rather than
// returned. On every path the log file is checked for truncation exactly
// once and then closed.
//
// # Context Usage
//
// Run takes a context.Context so the caller can translate SIGINT into
// cancellation with signal.NotifyContext.
package workflows
