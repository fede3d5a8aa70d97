package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	coverStems = []string{"cover", "folder", "front"}
	coverExts  = []string{".jpg", ".png", ".jpeg"}
)

// FindCoverArt returns the image sitting next to a local sample, trying
// cover, folder and front in that order. Remote samples have no art.
func FindCoverArt(locator string) string {
	path, isFileURL := strings.CutPrefix(locator, "file://")
	if path == "" || (!isFileURL && strings.Contains(path, "://")) {
		return ""
	}
	dir := filepath.Dir(path)
	for _, stem := range coverStems {
		for _, ext := range coverExts {
			art := filepath.Join(dir, stem+ext)
			if fi, err := os.Stat(art); err == nil && !fi.IsDir() {
				return art
			}
		}
	}
	return ""
}
