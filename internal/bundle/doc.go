// Package bundle places the WebView2 loader library next to a Windows build.
//
// The loader is searched under <build>/webview2-com-sys*/out/<tag>/ where tag
// is x64, arm64 or x86 (other GOARCH values pass through unchanged). When the
// build has none, a prebuilt copy in the fallback directory is used. Callers
// treat ErrLoaderNotFound as a warning, not a failure.
package bundle
