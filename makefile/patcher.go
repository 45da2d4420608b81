package makefile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/LegacyCodeHQ/mkdep/depscan"
)

// Marker separates hand-authored Makefile content from generated rules.
// Everything after it is regenerated on every run.
const Marker = "# DO NOT DELETE THIS LINE -- make depend depends on it."

var (
	directivePattern = regexp.MustCompile(`^#\s*@([a-z-]+):\s*"(.*)"\s*$`)
	seedPattern      = regexp.MustCompile(`^([A-Za-z0-9_.-]+\.h)\s*:\s*(\S+)\s*$`)
	togglePattern    = regexp.MustCompile(`^#\s*dependencies:\s*(inline|external)\s*$`)
)

// Seed is one header declaration found in a target file, mapping a bare
// header name to its full path.
type Seed struct {
	Name string
	Path string
}

// Prelude is the hand-authored part of a target file: every line up to and
// including the marker, plus the configuration recovered from it.
type Prelude struct {
	Path        string
	Lines       []string
	Config      *Config
	Seeds       []Seed
	ToggleIndex int
	External    bool
	HasMarker   bool
}

// ReadPrelude reads a target file up to and including the marker line,
// collecting directive comments, header seed lines, and the externalization
// toggle along the way. A target that cannot be read is a fatal error.
func ReadPrelude(read depscan.ContentReader, path string) (*Prelude, error) {
	content, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open target %s: %w", path, err)
	}

	pre := &Prelude{
		Path:        path,
		Config:      NewConfig(),
		ToggleIndex: -1,
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		pre.Lines = append(pre.Lines, line)

		if line == Marker {
			pre.HasMarker = true
			break
		}
		if m := directivePattern.FindStringSubmatch(line); m != nil {
			if err := pre.Config.Set(m[1], m[2]); err != nil {
				log.Warnf("%s: ignoring directive: %v", path, err)
			}
			continue
		}
		if m := togglePattern.FindStringSubmatch(line); m != nil {
			pre.ToggleIndex = len(pre.Lines) - 1
			pre.External = m[1] == "external"
			continue
		}
		if m := seedPattern.FindStringSubmatch(line); m != nil {
			pre.Seeds = append(pre.Seeds, Seed{Name: m[1], Path: m[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read target %s: %w", path, err)
	}

	return pre, nil
}

// Patch rewrites the target file: the prelude verbatim (with the toggle line
// updated to the resolved mode), then either the generated rules or a single
// include line naming the external dependency file. The file is replaced
// atomically; a failure leaves the original untouched.
func Patch(pre *Prelude, rules []string, external bool) error {
	return writeAtomic(pre.Path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)

		for i, line := range pre.Lines {
			if i == pre.ToggleIndex {
				line = toggleLine(external)
			}
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
		if !pre.HasMarker {
			if _, err := fmt.Fprintln(bw, Marker); err != nil {
				return err
			}
		}

		if external {
			if _, err := fmt.Fprintf(bw, "%s %s\n", pre.Config.IncludeCmd, pre.Config.External); err != nil {
				return err
			}
		} else {
			for _, rule := range rules {
				if _, err := fmt.Fprintln(bw, rule); err != nil {
					return err
				}
			}
		}

		return bw.Flush()
	})
}

func toggleLine(external bool) string {
	if external {
		return "# dependencies: external"
	}
	return "# dependencies: inline"
}

// writeAtomic writes to a temporary file in the same directory as path (so
// the rename never crosses filesystems) and renames it over path once the
// content is fully written and closed.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
