package console

import "github.com/tinycart/tinycart/internal/netget"

// Filesystem is the virtual filesystem the console browses. Enumeration and
// the directory probe are asynchronous: their callbacks may fire on any
// goroutine and at any later time, and must fire exactly once even on error.
type Filesystem interface {
	// Enum lists the current directory. each is called per entry until it
	// returns false; done is always called when enumeration finishes.
	Enum(each func(name string, dir bool) bool, done func())

	// Load reads a file from the current directory.
	Load(name string) ([]byte, bool)

	// Save writes a file into the current directory. Returns false if the
	// file exists and overwrite is unset, or on write failure.
	Save(name string, data []byte, overwrite bool) bool

	// Exists reports whether name exists in the current directory.
	Exists(name string) bool

	// IsDir reports whether name is a directory.
	IsDir(name string) bool

	// IsDirAsync probes name and reports the result through done.
	IsDirAsync(name string, done func(bool))

	// ChangeDir enters a subdirectory of the current directory.
	ChangeDir(name string)

	// DirBack moves to the parent directory.
	DirBack()

	// HomeDir moves to the filesystem root.
	HomeDir()

	// MakeDir creates a subdirectory of the current directory.
	MakeDir(name string) error

	// DeleteFile removes a file from the current directory.
	DeleteFile(name string) error

	// DeleteDir removes a directory and its contents.
	DeleteDir(name string) error

	// Dir returns the current directory path, empty at the root.
	Dir() string

	// Path returns the display path of name in the current directory.
	Path(name string) string
}

// Confirmer shows a modal yes/no request. onAnswer may fire on any
// goroutine; it must fire exactly once.
type Confirmer interface {
	Request(lines []string, onAnswer func(yes bool))
}

// Getter performs asynchronous HTTP GETs. Events are delivered through the
// console's completion queue, never concurrently with console logic.
type Getter interface {
	Get(url string, fn func(netget.Event))
}

// Clipboard bridges the OS clipboard.
type Clipboard interface {
	Get() (string, bool)
	Set(text string)
	Has() bool
}

// Runner executes cartridge code. The console never runs code itself; it
// hands the source to the runtime and prints whatever comes back.
type Runner interface {
	// Run starts the cartridge program from scratch.
	Run(code string) error

	// Resume continues the last run program.
	Resume() error

	// Eval evaluates an expression or statement and returns its printable
	// result.
	Eval(code string) (string, error)
}
