// Package catalog persists an index of subtitle scripts in SQLite.
//
// The Store records one entry per script path with the headline facts a
// listing needs: title, script type, style and event counts, warning count,
// and the time span covered by the events. A file lock next to the database
// enforces single-writer access across processes.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package catalog
