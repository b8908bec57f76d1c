// Package graphio reads and writes the line-oriented text form of adjacency
// graphs and writes conflict graphs for a downstream packing solver.
//
// Adjacency graph records, one per line, fields separated by white space:
//
//	V <index> <label> <part> <family> <direction> <left> <right>
//	E <a> <b> <label> <from> <to>
//	S <edge-label> <edge-label>
//	F <family> <name>
//
// V adds a vertex at an explicit index; "-" stands for an empty label and
// direction is one of "-", "0", "+". E joins the vertices with indices a and
// b; edge labels must be unique within a file. S links two relations as
// siblings and F names a family. Extremities use the "12t", "12h", "12_"
// and "_" forms of core.Extremity. Blank lines and lines starting with '#'
// are ignored.
//
// Conflict graph records:
//
//	C <index> <signature> <cycle>
//	X <index> <index>
//
// Errors carry the 1-based line number and wrap ErrMalformedLine or the core
// sentinel that rejected the record.
package graphio
