// Package io reads plan files and writes export artifacts.
//
// # Writing
//
// [WriteFileAtomic] writes to a temporary file in the destination directory
// and renames it into place, so an artifact either appears complete or not at
// all. A failed export never leaves a truncated file behind, and an earlier
// artifact at the same path survives until the new one is ready.
//
//	if err := io.WriteFileAtomic("house.svg", data, 0o644); err != nil {
//	    return err
//	}
//
// # Reading
//
// [ReadFile] reports a missing file as FILE_NOT_FOUND so the CLI can print a
// short message instead of an OS error.
package io
