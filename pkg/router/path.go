package router

import "strings"

// splitPath splits a path into segments, ignoring leading and
// trailing slashes. "" and "/" have no segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// joinPath joins rendered segments into a path string. No leading
// slash; zero segments yield "".
func joinPath(segs []string) string {
	return strings.Join(segs, "/")
}
