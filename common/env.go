// Package common holds names shared by the command line and its
// configuration layer.
package common

// Environment variable names for configuration.
const (
	// DataDirEnv overrides the directory holding the cookie journal and
	// the local storage database.
	DataDirEnv = "WARPSTORE_DATA_DIR"

	// URLEnv sets the page URL cookies are scoped to.
	URLEnv = "WARPSTORE_URL"

	// BackendEnv selects the requested storage mechanism.
	BackendEnv = "WARPSTORE_BACKEND"

	// DebugEnv enables info-level logging.
	DebugEnv = "WARPSTORE_DEBUG"

	// DisableCookiesEnv, DisableLocalEnv and DisableSessionEnv switch a
	// mechanism off as a restricted browser would.
	DisableCookiesEnv = "WARPSTORE_DISABLE_COOKIES"
	DisableLocalEnv   = "WARPSTORE_DISABLE_LOCAL"
	DisableSessionEnv = "WARPSTORE_DISABLE_SESSION"

	// SessionQuotaEnv limits session storage size in bytes.
	SessionQuotaEnv = "WARPSTORE_SESSION_QUOTA"
)
