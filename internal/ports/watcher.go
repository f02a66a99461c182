package ports

// Watcher monitors a set of files and reports changes so a scan can re-run.
// The adapter debounces bursts of events (editors often write several times
// per save). Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring paths. onChange is called with the absolute
	// path of each changed file and may be invoked from any goroutine.
	// Returns an error if a path doesn't exist or cannot be watched.
	Watch(paths []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no onChange call is running and none will fire. Must not be called
	// from inside onChange. Safe to call multiple times.
	Stop() error
}
