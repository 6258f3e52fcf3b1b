// Package repository implements the filesystem-backed bundle store and its
// lifecycle state machine.
//
// A bundle is a directory named by its DocID holding fragment files
// (document.pdf, document.txt, preview.png, metadata.json, plus arbitrary
// extras). Every bundle lives under exactly one of three partitions beneath
// the repository root: staging/ for freshly created bundles still being
// written, inbox/ for committed bundles awaiting review, and archive/ for
// finalized, immutable bundles.
//
// Lifecycle stages are separate Go types — StagingBundle, InboxedBundle,
// ArchivedBundle — so each stage only exposes the operations legal in that
// stage. Transitions (Commit, Archive) move the directory with a single
// atomic rename and return a handle of the destination type; the receiver
// must not be used afterwards. A stale handle is still safe at runtime: its
// operations fail with ErrNotFound because the directory has moved.
//
// The repository performs no locking and no retries. Concurrent transitions
// on the same identifier race; exactly one wins and the others observe
// ErrNotFound or ErrConflict. Existence probes (Get, List) are advisory and
// can be invalidated by a concurrent transition before the next call.
package repository
