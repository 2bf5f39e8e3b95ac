// Package mirror copies site content from object storage into the static root.
//
// A pull lists every object below the configured prefix and writes it to
// the matching relative path under the root. Directory markers (keys ending
// in "/") are ignored, and keys that would land outside the root (absolute
// keys, ".." segments) are skipped and reported instead of written.
//
// A prefix is a folder: "site" and "site/" both mirror "site/..." only.
//
// Objects are downloaded into a hidden staging directory beside the root
// and renamed into place, so a server reading the same root never sees a
// half-written file or a temp file.
//
// The server does not talk to storage while serving; pulls run from the
// sync command.
package mirror
