package progress

// Package progress implements the push-based progress subscription over a
// websocket connection. It guarantees at most one live subscription, ordered
// delivery, and silent dropping of malformed payloads. It makes no replay or
// reconnect promises; a late subscriber may miss early events because the
// synchronous conversion response already carries the immediately-known state.
