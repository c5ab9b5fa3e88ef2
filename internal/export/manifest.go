package export

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int    `json:"frame"`
	File     string `json:"file"`
	Rotation int    `json:"rotation"`
}

// WriteManifest writes manifest.json describing the exported frames.
// Failed frames are left out.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:    r.Frame,
			File:     r.File,
			Rotation: r.Rotation,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
