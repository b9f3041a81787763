package assess

import "fmt"

// Status is the aggregate outcome for one assessed file. It carries
// only the path and the verdict; per-check detail is reported through
// the assessor's writers as the checks run.
type Status struct {
	Path string
	Pass bool
}

// Ok returns a passing status for the path.
func Ok(path string) Status {
	return Status{Path: path, Pass: true}
}

// Fail returns a failing status for the path.
func Fail(path string) Status {
	return Status{Path: path}
}

// String renders the per-file report line.
func (s Status) String() string {
	if s.Pass {
		return fmt.Sprintf("ok: %s", s.Path)
	}
	return fmt.Sprintf("fail: %s", s.Path)
}
