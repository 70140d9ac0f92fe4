package pkgdb

// Version is reported in the default User-Agent string.
const Version = "0.4.0"
