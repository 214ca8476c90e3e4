package base

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func LoadJson(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, target)
	return err
}

// SaveJson writes 'source' as indented json, ready to be edited by hand and
// read back with LoadJson.
func SaveJson(path string, source interface{}) error {
	data, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't encode %q: %w", path, err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// TryRelative names 'target' relative to 'base' when it lies under it and
// returns 'target' unchanged otherwise.
func TryRelative(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	return rel
}
