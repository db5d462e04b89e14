package types

// Version is the application version, overridden via ldflags at release time
var Version = "0.1.0"
