package api

// Package api implements the HTTP client for the remote conversion service.
// Each media type has its own multipart upload endpoint; the synchronous
// response carries the session identifier and the immediately-known outcome,
// while remote processing progress arrives separately over the progress
// channel. Upload transfer progress is reported through a caller-supplied
// callback as the request body streams out.
