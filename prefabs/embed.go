package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var prefabsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a prefab file, preferring an on-disk copy under prefabs/ so
// tunables can be edited without rebuilding, then falling back to the
// embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return prefabsFS.ReadFile(clean)
}

// LoadScript reads a script from prefabs/scripts with the same disk-first
// lookup as Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
