//go:build windows

package fonts

import "golang.org/x/sys/windows"

// systemFontDir returns the Windows fonts folder, normally C:\Windows\Fonts.
func systemFontDir() string {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0)
	if err != nil {
		return ""
	}
	return dir
}
