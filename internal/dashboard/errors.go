package dashboard

import "fmt"

// ErrorKind identifies the category of a startup failure.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidFont indicates the UI font failed validation.
	KindInvalidFont
	// KindConfig indicates the configuration could not be loaded.
	KindConfig
	// KindJournal indicates the run journal could not be opened.
	KindJournal
	// KindWindow indicates the host could not create its surface.
	KindWindow
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFont:
		return "invalid-font"
	case KindConfig:
		return "config"
	case KindJournal:
		return "journal"
	case KindWindow:
		return "window"
	default:
		return "unknown"
	}
}

// AppError is returned by host start-up. Nothing past start-up fails with
// an error: the frame loop logs and carries on.
type AppError struct {
	// Op is the operation that failed (e.g., "desktop.Run").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
