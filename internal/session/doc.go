package session

// Package session implements the conversion session orchestrator: the state
// machine that drives a single file or batch through upload, remote
// processing and completion. It reconciles two independent sources of truth,
// the synchronous conversion response and the asynchronous progress channel,
// through a single reducer, and exposes a minimal command surface (select,
// convert, download, reset) to every form.
