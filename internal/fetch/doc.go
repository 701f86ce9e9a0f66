// Package fetch downloads dataset files from the public hosts.
//
// The package owns the URL layout of every source (nflverse release assets,
// the nfldata csv repository, and the handful of standalone files) and a
// plain HTTP client with a User-Agent, a timeout, and transparent gzip
// handling. It performs no retries: a failed download surfaces immediately to
// the caller.
package fetch
