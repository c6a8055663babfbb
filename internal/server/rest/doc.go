// Package rest exposes the directory over HTTP/JSON.
//
// Routes:
//
//	GET    /              liveness
//	GET    /users         list all users
//	POST   /users/create  create a user
//	DELETE /users/{id}    delete a user
//
// Client errors answer {"message": ...}; store failures answer
// {"error": ...} with a generic text and are logged server-side.
package rest
