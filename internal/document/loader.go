// Package document validates and reads the plain-text files handed to the CLI.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"textsum/internal/domain"
)

// Extension is the only file type accepted by Load.
const Extension = ".txt"

// Errors returned by Load, wrapped with the offending path.
var (
	// ErrNotFound means nothing exists at the path.
	ErrNotFound = errors.New("file does not exist")
	// ErrUnsupportedType means the path does not end in .txt.
	ErrUnsupportedType = errors.New("only .txt files are supported")
	// ErrInvalidEncoding means the file content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// Load checks that path exists and has a .txt extension (any case), then
// reads it as UTF-8 text.
func Load(path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Document{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return domain.Document{}, err
	}
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return domain.Document{}, fmt.Errorf("%s: %w", path, ErrUnsupportedType)
	}
	if info.IsDir() {
		return domain.Document{}, fmt.Errorf("%s: is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, err
	}
	if !utf8.Valid(data) {
		return domain.Document{}, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return domain.Document{Path: path, Content: string(data)}, nil
}
