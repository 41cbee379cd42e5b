// Package organize implements the classification and deduplicating-move
// engine at the heart of sortd.
//
// A Runner walks a source tree, classifies each regular file by extension,
// and hands mapped files to the Engine, which decides between a direct move,
// a move under a synthesized unique name (same name, different content), or
// a skip (identical duplicate already at the destination). Content equality
// is decided by streaming SHA-256 digests.
//
// Hash and move failures are confined to the file that caused them; only
// invalid source/destination directories abort a run. Counters for every
// decision are accumulated in a Summary.
package organize
