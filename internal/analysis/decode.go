package analysis

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"soundcheck/internal/services"
)

// Decode parses one analyzer result document.
func Decode(r io.Reader) (*Result, error) {
	decoder := json.NewDecoder(r)
	var result Result
	if err := decoder.Decode(&result); err != nil {
		return nil, services.Wrap(services.ErrValidation, "analysis", "decode result", "malformed result document", err)
	}
	if result.Status == "" {
		result.Status = FileStatusNormal
	}
	return &result, nil
}

// LoadFile reads and parses the analyzer result document at path. The
// document's filename field falls back to the document's own base name when
// the analyzer omitted it.
func LoadFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "analysis", "load result", path, nil)
		}
		return nil, services.Wrap(services.ErrStore, "analysis", "load result", path, err)
	}
	defer file.Close()

	result, err := Decode(file)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Filename) == "" {
		result.Filename = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return result, nil
}
