/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keys

import "strings"

// DefaultDelimiter separates the namespace and segments of a storage key.
const DefaultDelimiter = "/"

// Make joins namespace and segments with delimiter into a single storage key.
// Segments must not contain the delimiter, otherwise two different segment
// tuples can map to the same key.
func Make(namespace, delimiter string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, namespace)
	parts = append(parts, segments...)
	return strings.Join(parts, delimiter)
}

// Prefix returns the string every key of namespace starts with.
func Prefix(namespace, delimiter string) string {
	return namespace + delimiter
}

// InNamespace reports whether key was produced by Make for namespace.
// A sibling namespace sharing a textual prefix ("orbit" vs "orbit-bucket")
// does not match.
func InNamespace(key, namespace, delimiter string) bool {
	return strings.HasPrefix(key, Prefix(namespace, delimiter))
}

// Segments splits the part of key following the namespace prefix.
// The boolean is false if key does not belong to namespace.
func Segments(key, namespace, delimiter string) ([]string, bool) {
	if !InNamespace(key, namespace, delimiter) {
		return nil, false
	}
	rest := strings.TrimPrefix(key, Prefix(namespace, delimiter))
	return strings.Split(rest, delimiter), true
}
