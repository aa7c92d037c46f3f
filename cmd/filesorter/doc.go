// Package main hosts the filesorter CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, takes the per-directory run
// lock, and hands the directory to the organizer engine. Rendering lives here;
// classification, moves, and undo live in internal packages.
package main
