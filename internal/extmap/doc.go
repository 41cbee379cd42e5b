// Package extmap owns the extension-to-category lookup table.
//
// A Map is an immutable-by-convention value: the organize core only reads
// it, and all editing happens through pure helpers (Set, Remove, Merge) that
// return a new Map. The built-in defaults can be overridden per extension by
// a JSON file managed with LoadFile/SaveFile.
//
// Keys are lowercase extensions with a leading dot; lookups fold case so
// "report.PDF" and "report.pdf" classify identically.
package extmap
