package internal

// Version is the current slideglot release version
const Version = "0.3.1"
