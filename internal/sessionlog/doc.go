// Package sessionlog is the logging facility shared by every script run in a
// host session.
//
// A Facility owns exactly one Sink. Every Logger obtained from it, whatever
// its position in the dot-separated name tree, reads and writes its level
// through that Sink, so a level change made by one script is observed by all
// loggers at once. The verbose and debug modes are also written to a
// session.Store so that the next script run, which starts with fresh
// in-process state, picks them up during New.
//
// # Initial level
//
// New computes the runtime default once, in descending priority:
//
//  1. the host's forced-debug signal
//  2. the persisted debug flag
//  3. the persisted verbose flag
//  4. the static default (WARNING unless configured)
//
// # Concurrency
//
// The threshold is read and written atomically and the logger cache is
// guarded by a mutex. There is no coordination beyond that: if the host runs
// scripts concurrently, the last writer of the threshold or of a session flag
// wins. The facility assumes the host runs one script at a time.
package sessionlog
