// Package file provides a directory-based DataFetcher implementation for the config package.
//
// Each property group lives in its own document inside a property directory.
// An optional environment name selects a subdirectory whose documents take
// precedence over the base ones:
//
//	dfprop/
//	    basicInfoMap.yaml
//	    databaseInfoMap.yaml      <- used when env is "" or has no override
//	    ut/
//	        databaseInfoMap.yaml  <- used when env is "ut"
//
// Documents are read on first Fetch and cached, so later calls return the same
// data without re-reading the filesystem.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("./dfprop", "ut")()
//	if err != nil {
//	    // Handle error: directory not found, path is a file, etc.
//	}
//	data, err := fetcher.Fetch("databaseInfoMap")
//
// Error Handling:
//   - Construction returns error if the directory cannot be read or is a file
//   - A missing document returns an error wrapping ErrNotFound and config.ErrAbsent
//   - Errors include the path for easier debugging
package file
