package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"travelog/internal/fileutil"
)

// jsGlobal is the variable the script wrapper assigns, for front ends served
// from file:// where fetch of local JSON is blocked.
const jsGlobal = "window.__TRAVELOG_ENTRIES__"

// Emit writes the manifest twice under dataDir: entries.json as a standalone
// document and entries.js as a script-loadable wrapper assigning the same
// structure. Both writes are atomic.
func Emit(manifest Manifest, dataDir string) error {
	payload, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	jsonPath := filepath.Join(dataDir, "entries.json")
	if err := fileutil.WriteFileAtomic(jsonPath, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	wrapper := make([]byte, 0, len(payload)+len(jsGlobal)+8)
	wrapper = append(wrapper, jsGlobal...)
	wrapper = append(wrapper, " = "...)
	wrapper = append(wrapper, payload...)
	wrapper = append(wrapper, ";\n"...)

	jsPath := filepath.Join(dataDir, "entries.js")
	if err := fileutil.WriteFileAtomic(jsPath, wrapper, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsPath, err)
	}
	return nil
}
