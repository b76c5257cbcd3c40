package utils

import "sync"

var gdalMu sync.Mutex

// ExecuteWithMutex serializes calls into GDAL, whose dataset handles are
// not safe for concurrent use from multiple goroutines.
func ExecuteWithMutex(fn func()) {
	gdalMu.Lock()
	defer gdalMu.Unlock()
	fn()
}
