// Package textobject carries the snippet-instance side of the expansion: the
// handle created at launch time, its buffer range, its tabstops, and the
// context value lifecycle hooks thread between each other.
//
// The full live placeholder graph with mirroring belongs to the embedding
// editor; this package implements exactly the surface the engine consumes:
// ReplaceInitialText, UpdateTextObjects, Start/End, Context and Tabstops.
package textobject
