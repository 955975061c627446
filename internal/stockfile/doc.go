// Package stockfile reads and writes the flat inventory file.
//
// # File Format
//
// The first line is a header and is never interpreted. Every following
// line is one record with five comma-separated fields:
//
//	Country,Code,Product,Cost,Quantity
//	France,AB1,Boot,49.99,3
//
// Cost is a decimal and Quantity an integer. Embedded commas cannot be
// escaped.
//
// # Loading
//
// Load is best-effort: a line that does not parse is skipped and reported
// in the LoadResult, and loading continues with the next line. Blank lines
// are skipped without a diagnostic.
//
// # Restock Writes
//
// PersistRestock patches the trailing quantity field of every data line
// whose country matches, copying the header and every other line
// byte-for-byte. The new content goes to a temporary file in the same
// directory which is synced and renamed over the original, so a crash
// leaves either the old or the new file in place.
package stockfile
