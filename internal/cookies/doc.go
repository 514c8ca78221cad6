// Package cookies seeds an emulated page with cookies taken from a real
// browser profile. It reads Firefox (moz_cookies) and Chrome (cookies,
// unencrypted values only) SQLite stores and Netscape cookie files, keeps
// the cookies a script on the page could see, and replays them as
// document.cookie writes.
//
// Cookie values are never logged; only names and domains may be.
package cookies
