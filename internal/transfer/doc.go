// Package transfer hands a stored file to exactly one downloader over a
// dedicated loopback TCP listener.
//
// # Protocol
//
// The receiving side connects to the offered port. The server writes one
// line
//
//	Filename: <name>\n
//
// followed by the raw file bytes, then closes the connection. There is no
// length prefix; EOF marks the end of the file. A transfer that fails after
// the header has been written is aborted with a TCP reset so the peer can
// tell it apart from a clean EOF.
//
// # Lifecycle
//
// Registry.Offer binds the listener synchronously and records it under its
// port. Registry.Serve accepts a single connection on it and retires the
// offer whatever the outcome: the listener is closed right after Accept, so
// a second connection is refused. Offers that are never picked up expire
// after the configured TTL.
//
// A token names nothing but a port, so a retired port is kept out of reuse
// for a quarantine period (WithPortQuarantine). A replayed token then finds
// no listener instead of a file offered later on the same port.
package transfer
