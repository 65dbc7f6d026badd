package version

// Version is overridden at build time with -ldflags "-X readsim/internal/version.Version=...".
var Version = "0.3.0"
