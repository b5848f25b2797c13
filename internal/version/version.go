package version

// Version is the sysreport release version. Overridable at link time with
// -ldflags "-X sysreport/internal/version.Version=...".
var Version = "0.1.0"
