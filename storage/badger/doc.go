// Package badger implements the storage repositories on top of BadgerDB.
//
// Profiles are stored as primary records keyed by ID with a secondary index
// from owning user to profile ID. Match history entries get a composite
// per-user index key (user, timestamp, id) in big-endian order so a reverse
// iteration yields newest entries first.
package badger
