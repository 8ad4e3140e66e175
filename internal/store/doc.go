// Package store persists rendered trendline images on the local filesystem.
//
// Images are written as <name>.png in a single output directory. Writes go
// through a temp file in the same directory followed by a rename, so a
// concurrent reader sees either the old or the new image, never a partial
// file. Regenerating an image overwrites it.
package store
