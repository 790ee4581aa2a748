// Package client talks to the Fruitie HTTP API.
//
// HTTPClient implements chat.Transport for the assistant endpoint and
// carries the account calls (Register, Login, Profile). The token obtained
// by Login is kept in memory and attached as a bearer credential to
// protected requests.
//
// # Error Handling
//
// Chat failures are split into *NetworkError (the request did not complete
// or the server answered with a non-2xx status) and *ProtocolError (the
// server answered but the body is not a valid reply). Account calls report
// API rejections as *StatusError, which matches ErrBadRequest,
// ErrUnauthorized, ErrConflict or ErrNotFound through errors.Is.
package client
