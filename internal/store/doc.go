package store

// Package store persists the whole book collection as one JSON blob in a
// single key of the application's key-value preferences. Reads never fail:
// missing or corrupt data is treated as an empty collection.
