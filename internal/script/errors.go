package script

import "fmt"

// ScanError is returned by Run when the script directory cannot be listed.
// No script file is processed in that case.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// LoadError describes a script file that contributed no tests. Stage is
// "load" when the file failed to compile and "execute" when its top-level
// chunk raised an error.
type LoadError struct {
	Path  string
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
