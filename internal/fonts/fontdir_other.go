//go:build !windows

package fonts

// Unix table entries are absolute paths.
func systemFontDir() string { return "" }
