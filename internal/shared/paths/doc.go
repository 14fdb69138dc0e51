// Package paths provides standardized filesystem paths for the window host.
//
// Dist root resolution:
//   - An explicit override (--dist / TAUPY_WINDOW_DIST) is used verbatim,
//     relative paths stay relative to the working directory.
//   - Otherwise the root is <cwd>/dist.
//
// The launcher resolves the root once and hands the result to the asset
// server; nothing else calls ResolveDist at runtime.
//
// Loader layout:
//
//	<build-dir>/webview2-com-sys*/out/<arch-tag>/WebView2Loader.dll
//
// where <arch-tag> is one of x64, arm64 or x86 (see ArchTag).
package paths
