// Package fileutil provides the file-writing primitives behind the persistent
// state store.
//
// WriteFileAtomic writes bytes via temp-file-then-rename so a concurrent
// reader never observes a half-written document, and EnsureDirForFile creates
// parent directories so the state file can be created lazily on first write.
package fileutil
