package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It renders one conversion form per media type, wires user
// interactions to the session orchestrator and shows notifications and
// settings. All UI strings are localized via Localization.
