/*
Package keys derives flat storage keys from structured identifiers.

A key is the namespace followed by one or more segments, all joined by a
delimiter:

	keys.Make("orbit", "/", "planet", "jupiter") // "orbit/planet/jupiter"
	keys.Make("orbit-bucket", "/", "session")   // "orbit-bucket/session"

Bucket items use a single segment (the logical item key); records use two
(type and id). Segments are not escaped, so a delimiter inside a segment can
make two identifiers collide.
*/
package keys
