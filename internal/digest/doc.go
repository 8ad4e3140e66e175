// Package digest computes short content digests for logging and caching.
//
//   - Fingerprint: BLAKE2b-256 truncated to 10 bytes (20 hex chars), used to
//     identify which dataset file a request was served from.
//   - ETag: a quoted xxhash64 of a response body for HTTP validators.
package digest
