package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/dpsheet/internal/ux"
)

var configTemplate = `# dpsheet configuration

# Directory that 'export' and 'save' write into.
output-dir: .

# debug, info, warn or error.
log-level: warn

# Optional JSON log file.
# log-file: ~/dpsheet.log

# Format used by 'export' with no argument: json, md or xlsx.
default-format: json
`

// Init writes a commented default config file at path.
func Init(out io.Writer, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	fmt.Fprintf(out, "\n%s%s✓ Wrote default config%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(out, "  %s%s%s\n\n", ux.Cyan, path, ux.Reset)
	fmt.Fprintf(out, "  Next steps:\n")
	fmt.Fprintf(out, "    1. Set %soutput-dir%s to where exports should land\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(out, "    2. Run %sdpsheet edit%s to start a worksheet\n\n", ux.Cyan, ux.Reset)
	return nil
}
