package cmd

const DESCRIPTION = `
warpstore keeps key-value data the way a web page does: in cookies,
in localStorage or in sessionStorage. When the requested mechanism is
unavailable it falls back to cookies, and when cookies are disabled
too every operation becomes a no-op.
`

const (
	SetDescription = `The set command stores a value under a key in the selected
backend. Cookie writes accept path, domain, expiry and max-age
attributes; other backends ignore them.

Example:
        warpstore set theme dark
        warpstore -b cookie set sid abc --max-age 3600

`
	GetDescription = `The get command prints the value stored under a key.

Example:
        warpstore get theme

`
	RemoveDescription = `The remove command deletes a key. A cookie is only removed
when the path and domain match the ones it was written with.

Example:
        warpstore rm theme
        warpstore -b cookie rm sid --path /app

`
	KeyDescription = `The key command prints the key stored at an index.

Example:
        warpstore key 0

`
	LengthDescription = `The length command prints the number of stored entries. For
cookies this is the number of '=' signs in the cookie string.

Example:
        warpstore length

`
	HasDescription = `The has command prints whether a key is present.

Example:
        warpstore has theme

`
	KeysDescription = `The keys command lists every key in order.

Example:
        warpstore keys

`
	ClearDescription = `The clear command removes every entry of the selected backend.

Example:
        warpstore -b session clear

`
	SupportsDescription = `The supports command reports whether a mechanism is usable.
Without an argument it prints a table of all mechanisms.

Example:
        warpstore supports localStorage
        warpstore --disable-local supports

`
	BackendDescription = `The backend command prints the mechanism the fallback chain
picked for the requested backend.

Example:
        warpstore --disable-local backend

`
	RawDescription = `The raw command prints the cookie string visible to the page.

Example:
        warpstore raw

`
	CompactDescription = `The compact command rewrites the cookie journal keeping only
the cookies that are still alive.

Example:
        warpstore compact

`
	ImportDescription = `The import command copies the cookies a script on the page could
see from a browser cookie store into the page's cookie jar. Firefox
(cookies.sqlite), Chrome (Cookies, unencrypted values only) and
Netscape cookies.txt files are supported. HttpOnly cookies are skipped.

Example:
        warpstore --url https://www.example.com/ import ~/cookies.txt

`
	RunDescription = `The run command executes a script against the emulated page.
Scripts see document.cookie, navigator.cookieEnabled and
window.localStorage / window.sessionStorage, and can load the
selector with require("warpstore").

Example:
        warpstore run script.js

`
)
