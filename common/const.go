package common

// AppName is used for the binary, the data directory and log prefixes.
const AppName = "warpstore"

// File names inside the data directory.
const (
	CookieJournalFile = "cookies.journal"
	LocalStorageFile  = "local.sqlite"
)

// DefaultSessionQuota matches the 5 MiB most browsers grant a storage area.
const DefaultSessionQuota = 5 << 20
