package httpd

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound signals a URI that maps to nothing under the webroot.
	ErrNotFound = errors.New("no such file or directory under webroot")
	// ErrUnknownType signals an existing file whose media type cannot be
	// determined from its name.
	ErrUnknownType = errors.New("undeterminable media type")
)

// Resolver maps request URIs to content under a fixed root directory.
type Resolver struct {
	Root string
}

// Resolve returns the content bytes and media type for uri. A directory
// yields a text/plain listing of its immediate entries; a file yields its
// raw bytes and the type guessed from its extension. Returns ErrNotFound for
// a nonexistent target and ErrUnknownType for a file with no recognizable
// extension.
func (rs *Resolver) Resolve(uri string) ([]byte, string, error) {
	target, ok := rs.effectivePath(uri)
	if !ok {
		return nil, "", ErrNotFound
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("stat %s: %w", target, err)
	}

	if info.IsDir() {
		listing, err := listDirectory(target)
		if err != nil {
			return nil, "", err
		}
		return listing, "text/plain", nil
	}

	mediaType := typeByName(target)
	if mediaType == "" {
		return nil, "", ErrUnknownType
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", target, err)
	}
	return content, mediaType, nil
}

// effectivePath joins uri under the root and rejects anything that escapes
// it. The containment check deviates from a naive strip-and-join, which
// would let ".." segments reach outside the webroot.
func (rs *Resolver) effectivePath(uri string) (string, bool) {
	root := filepath.Clean(rs.Root)
	joined := filepath.Join(root, strings.Trim(uri, "/"))
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", false
	}
	return joined, true
}

// typeByName guesses the media type from the file extension, stripping any
// parameters so the Content-Type header carries the bare type.
func typeByName(path string) string {
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(mt); err == nil {
		return mediaType
	}
	return mt
}

// listDirectory formats one line per immediate entry: permission bits, size
// in bytes, and name, in lexical order. Deterministic for a given directory
// state.
func listDirectory(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var sb strings.Builder
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat entry %s: %w", entry.Name(), err)
		}
		fmt.Fprintf(&sb, "%s %8d %s\n", info.Mode(), info.Size(), entry.Name())
	}
	return []byte(sb.String()), nil
}
