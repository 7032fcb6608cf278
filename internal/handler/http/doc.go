// Package http implements an in-memory stand-in for the console's backend
// REST API.
//
// It serves /users/, /channels/ and /user-channels/ with the same list
// parameters, status codes and {"detail": ...} error bodies as the real
// backend, and is used for local demos (cmd/fakeapi) and as the server side
// of adapter and service tests. Request ids and access logging are handled by
// middleware before requests reach the handlers.
package http
