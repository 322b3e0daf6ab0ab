// Package worker runs parsing and diffing off the interactive thread as
// a JSON-RPC 2.0 service.
//
// A [Server] answers the methods parse, diff, brackets, format and
// diagnostics over any byte stream; [Serve] wires one to a connection.
// Every request names a document and the version of the text it
// carries. The server keeps parsed trees in a [Cache] keyed by both, so
// a diff may refer to trees parsed by earlier requests.
//
// Results are never cancelled in flight. Instead a [Client] remembers
// the latest version submitted for each document and discards
// responses for older versions with [ErrStale].
package worker
