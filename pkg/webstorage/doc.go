// Package webstorage exposes cookies, local storage and session storage
// behind one Storage interface.
//
// The environment is injected: a RawCookies provider stands in for
// document.cookie and NativeStorage handles stand in for the browser's
// localStorage and sessionStorage objects. A Selector probes the
// Environment through a Detector and degrades requested mechanism ->
// cookie -> NopStorage, so callers never branch on the backend they got.
//
// Nothing here is safe for concurrent use unless the injected handles
// are; every operation is a synchronous transformation of the raw string
// or a direct call into the native handle.
package webstorage
