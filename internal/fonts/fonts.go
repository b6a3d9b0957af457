package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultSize is used for descriptors that leave Size unset.
const DefaultSize = 12

// Descriptor requests a face by point size and weight.
type Descriptor struct {
	Size float64
	Bold bool
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Resolver maps descriptors to faces using one platform's font files.
// Any failure to read or decode a file yields the fallback face; the
// failure is logged and never returned.
type Resolver struct {
	files Files
	dir   string

	Logger Logger

	mu    sync.Mutex
	faces map[Descriptor]font.Face
}

// NewResolver creates a resolver for files. Relative file names are joined
// with dir.
func NewResolver(files Files, dir string) *Resolver {
	return &Resolver{files: files, dir: dir, faces: map[Descriptor]font.Face{}}
}

// ForPlatform resolves the lookup table entry for goos once and returns a
// resolver bound to it. Without an entry every face is the fallback.
func ForPlatform(goos string) *Resolver {
	files, _ := Lookup(goos)
	return NewResolver(files, systemFontDir())
}

// Fallback is the built-in bitmap face used when no outline font is available.
func Fallback() font.Face { return basicfont.Face7x13 }

// Path returns the file the resolver reads for the given weight, or "" when
// the platform has none.
func (r *Resolver) Path(bold bool) string {
	name := r.files.Regular
	if bold {
		name = r.files.Bold
	}
	if name == "" || filepath.IsAbs(name) || r.dir == "" {
		return name
	}
	return filepath.Join(r.dir, name)
}

// Face returns a face for d. Faces are cached per descriptor.
func (r *Resolver) Face(d Descriptor) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.faces == nil {
		r.faces = map[Descriptor]font.Face{}
	}
	if face, ok := r.faces[d]; ok {
		return face
	}
	face := r.load(d)
	r.faces[d] = face
	return face
}

func (r *Resolver) load(d Descriptor) font.Face {
	path := r.Path(d.Bold)
	if path == "" {
		r.errorf("no font file for this platform, using basicfont")
		return Fallback()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		r.errorf("font read failed, using basicfont: %v", err)
		return Fallback()
	}
	face, err := Decode(data, d.Size)
	if err != nil {
		r.errorf("font decode %s failed, using basicfont: %v", path, err)
		return Fallback()
	}
	if r.Logger != nil {
		r.Logger.Infof("fonts", "loaded %s at %gpt", path, d.Size)
	}
	return face
}

func (r *Resolver) errorf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Errorf("fonts", format, args...)
	}
}

// Decode builds a face from TrueType/OpenType bytes. The x/image sfnt
// decoder is tried first, then freetype's.
func Decode(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	face, err := decodeOpenType(data, size)
	if err == nil {
		return face, nil
	}
	face, terr := decodeTrueType(data, size)
	if terr == nil {
		return face, nil
	}
	return nil, errors.Join(err, terr)
}

func decodeOpenType(data []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: DPI, Hinting: font.HintingFull})
}

func decodeTrueType(data []byte, size float64) (font.Face, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: DPI, Hinting: font.HintingFull}), nil
}
