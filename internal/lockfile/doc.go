// Package lockfile implements the advisory marker-file lock guarding the
// persistent state document.
//
// The lock is a convention shared by cooperating writers, not a kernel
// primitive: holding the lock means a marker file exists at the agreed path.
// Acquisition is a bounded poll loop with create-if-absent semantics, and a
// marker whose UTC mtime exceeds a staleness threshold is presumed abandoned
// by a crashed writer and reclaimed. Readers never take the lock.
package lockfile
