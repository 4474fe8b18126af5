package destination

// Package destination decides what happens to a completed conversion
// artifact: saved locally through the host capability when the user chose a
// directory, or handed to the system browser as a download link. It owns the
// filename sanitization and locator navigation guards.
