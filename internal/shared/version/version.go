package version

// Version is the release version reported by -version and the health endpoint.
const Version = "0.3.0"
