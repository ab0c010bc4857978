package config

const ClientName = "console"

var (
	// overridden by the build system
	BuildVersion = "dev"
	BuildCommit  = ""
	BuildDate    = ""
)

// UserAgent identifies the client build on every API request
func UserAgent() string {
	return ClientName + "/" + BuildVersion
}
