package locator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// Ripgrep invokes the rg binary as the external search collaborator. The
// --null flag separates the file path from the byte-offset counter with a
// NUL byte, which keeps paths containing colons parseable.
type Ripgrep struct {
	// Binary is the rg executable name or path.
	Binary string
	// Globs restricts discovery to the given document extensions when no
	// explicit paths are supplied.
	Globs []string
}

// NewRipgrep returns a searcher shelling out to the given rg binary.
func NewRipgrep(binary string, globs []string) *Ripgrep {
	return &Ripgrep{Binary: binary, Globs: globs}
}

// Search runs rg and parses its match list. Zero matches is a normal empty
// result; any other failure (missing binary, unreadable corpus) is fatal.
func (r *Ripgrep) Search(ctx context.Context, pattern string, paths []string) ([]Match, error) {
	args := []string{
		"--byte-offset",
		"--only-matching",
		"--no-heading",
		"--with-filename",
		"--null",
		"--sort", "path",
	}
	if len(paths) == 0 {
		for _, g := range r.Globs {
			args = append(args, "--glob", g)
		}
	}
	args = append(args, "--regexp", pattern)
	if len(paths) > 0 {
		args = append(args, paths...)
	} else {
		args = append(args, ".")
	}

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// rg exits 1 when nothing matched, which is an empty corpus, not a
		// failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("search tool %s failed: %w: %s", r.Binary, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return parseMatches(out)
}

// parseMatches reads rg output lines of the form "path\x00offset:match".
func parseMatches(out []byte) ([]Match, error) {
	var matches []Match
	for _, line := range bytes.Split(out, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		pathEnd := bytes.IndexByte(line, 0)
		if pathEnd < 0 {
			return nil, fmt.Errorf("malformed search output line %q: missing NUL delimiter", line)
		}
		rest := line[pathEnd+1:]
		offEnd := bytes.IndexByte(rest, ':')
		if offEnd < 0 {
			return nil, fmt.Errorf("malformed search output line %q: missing offset delimiter", line)
		}
		off, err := strconv.ParseInt(string(rest[:offEnd]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed byte offset in search output line %q: %w", line, err)
		}
		matches = append(matches, Match{Path: string(line[:pathEnd]), Offset: off})
	}
	return matches, nil
}
