package fonts

// Files names the regular and bold font files for one platform.
// Relative names are resolved against the platform's system fonts folder.
type Files struct {
	Regular string
	Bold    string
}

const dejaVuDir = "/usr/share/fonts/truetype/dejavu/"

var dejaVu = Files{
	Regular: dejaVuDir + "DejaVuSans.ttf",
	Bold:    dejaVuDir + "DejaVuSans-Bold.ttf",
}

// PlatformFiles is the font lookup table keyed by GOOS.
// Platforms without an entry render every run with the fallback face.
var PlatformFiles = map[string]Files{
	"windows": {Regular: "arial.ttf", Bold: "arialbd.ttf"},
	"linux":   dejaVu,
	"android": dejaVu,
	"darwin":  dejaVu,
	"freebsd": dejaVu,
	"openbsd": dejaVu,
	"netbsd":  dejaVu,
}

// Lookup returns the table entry for goos.
func Lookup(goos string) (Files, bool) {
	files, ok := PlatformFiles[goos]
	return files, ok
}

// DPI used for every face; at 72 DPI one point is one pixel.
const DPI = 72
