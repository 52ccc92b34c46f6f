// Package fs provides the filesystem seam used by table file I/O and the
// local blob store.
//
//   - [LocalFS]: production implementation on top of package os
//   - [FaultyFS]: test wrapper that injects open, write, sync and close errors
//
// Production code uses fs.Default:
//
//	f, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
//
// Tests inject a FaultyFS to exercise error paths:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".csv", fs.Fault{FailAfterBytes: 16})
package fs
