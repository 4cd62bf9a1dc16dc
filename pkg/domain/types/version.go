package types

// Version is the application version, overwritten at build time with -ldflags
var Version = "dev"
