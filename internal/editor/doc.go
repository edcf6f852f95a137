// Package editor defines the host editor adapter consumed by the snippet
// engine: buffer lines, cursor, named marks, and a word-boundary test.
//
// The engine itself is editor-agnostic. A real integration implements Host on
// top of the embedding editor; Memory is a complete in-process implementation
// used by tests and the debug CLI.
//
// All positions exposed through this package are zero-based. Hosts with
// 1-based line conventions convert at the boundary (ToHostLine/FromHostLine).
package editor
