package platform

// Package platform bridges the app to the host operating system: fetching
// completed artifacts into a local directory, revealing saved files in the
// system file manager and locating standard user directories.
