// Package modelfile reads building model descriptions from TOML or YAML
// files and imports them into a document.
//
// A model file declares levels, floor types and floors. Floor outlines are
// given as a rectangle, a polygon, or a chain of line, arc and spline
// curves, each with optional holes:
//
//	[[levels]]
//	name = "Ground"
//	elevation = 0.0
//
//	[[floor_types]]
//	name = "Slab 200"
//	thickness = 0.2
//
//	[[floors]]
//	name = "Deck"
//	type = "Slab 200"
//	level = "Ground"
//	boundary = { rect = [0.0, 0.0, 10.0, 8.0] }
//	holes = [{ rect = [2.0, 2.0, 4.0, 4.0] }]
//
// Element IDs are derived from names, so importing the same file again
// updates the elements it created instead of duplicating them.
// Watcher re-imports a file whenever it is saved.
package modelfile
