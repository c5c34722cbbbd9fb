// Package arrident resolves and remembers which live server-side component
// (indexer, download client, import list) belongs to a plugin under test,
// across repeated end-to-end test runs against disposable environments.
//
// Test harnesses that repeatedly configure a plugin against a fresh or reused
// server face two problems: the same plugin can be installed twice side by
// side (making name-based matching dangerous), and component ids drift as
// environments are recreated. arrident addresses both with a deterministic
// selector that surfaces ambiguity instead of guessing, and a best-effort
// file-backed cache of "preferred ids" shared across parallel test processes.
//
// # Basic Usage
//
//	key := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "matrix-a")
//
//	store := arrident.NewStore(statePath)
//	state := store.Read() // never fails; corrupt or missing files read as empty
//
//	preferred, _ := state.PreferredID(key, "Qobuzarr", arrident.ComponentIndexer)
//	sel := arrident.Select(liveIndexers, "Qobuzarr", preferred)
//	switch sel.Resolution {
//	case arrident.ResolutionPreferredID, arrident.ResolutionImplementationName:
//	    // sel.Component is the plugin's indexer
//	case arrident.ResolutionAmbiguousImplementationName:
//	    // two same-type installations; sel.CandidateIDs lists them — fail the gate
//	}
//
// After configuring a component for the first time, remember it:
//
//	state.SetPreferredID(key, "Qobuzarr", arrident.ComponentIndexer, created.ID())
//	res := store.Write(ctx, state)
//	// res.Reason is one of written, no_changes, lock_timeout, io_error;
//	// none of them should fail the enclosing test run.
//
// # Cross-Process Coordination
//
// The state file is shared by independently scheduled processes (parallel CI
// jobs). Writers coordinate through an advisory marker-file lock next to the
// document; a marker older than the staleness threshold is presumed abandoned
// by a crashed writer and reclaimed. This is a convenience cache, not a lock
// service: contention and I/O failures degrade to structured results, never
// to errors that would fail the run.
package arrident
