package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rook-computer/bannermaker/internal/banners"
	"github.com/rook-computer/bannermaker/internal/fonts"
	"github.com/rook-computer/bannermaker/internal/render"
)

type App struct {
	Renderer *render.PNGRenderer
	Logger   Logger
	Stdout   io.Writer
	// Dir is where banners are written; empty means the working directory.
	Dir string
}

func New(faces render.FaceSource, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	renderer := render.NewPNGRenderer(faces)
	renderer.Logger = logger
	return &App{Renderer: renderer, Logger: logger, Stdout: os.Stdout}
}

// Run generates the named banner into the working directory using the font
// table entry for this platform.
func Run(name string) error {
	var logger Logger = NoopLogger{}
	resolver := fonts.ForPlatform(runtime.GOOS)
	resolver.Logger = logger
	_, err := New(resolver, logger).Generate(name)
	return err
}

// Generate renders the named embedded banner, writes it over any existing
// file and prints a confirmation line. It returns the path written.
func (app *App) Generate(name string) (string, error) {
	banner, err := banners.Load(name)
	if err != nil {
		app.Logger.Errorf("app", "load %s failed: %v", name, err)
		return "", err
	}
	path := banner.Output
	if app.Dir != "" {
		path = filepath.Join(app.Dir, banner.Output)
	}
	if err := app.Renderer.WriteFile(banner, path); err != nil {
		app.Logger.Errorf("app", "write %s failed: %v", path, err)
		return "", err
	}
	if app.Stdout != nil {
		fmt.Fprintf(app.Stdout, "Banner saved as %s\n", banner.Output)
	}
	return path, nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
