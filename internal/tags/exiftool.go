package tags

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
)

// ExifTool reads and writes PDF tags via the exiftool binary. Calls block
// until the subprocess exits.
type ExifTool struct {
	bin string
}

// NewExifTool creates a tag store backed by the given exiftool binary
// ("" uses the one on PATH).
func NewExifTool(bin string) *ExifTool {
	if bin == "" {
		bin = "exiftool"
	}
	return &ExifTool{bin: bin}
}

// Read returns the file's tag values for the fixed vocabulary. Absent tags
// are missing from the result.
func (e *ExifTool) Read(path string) (Values, error) {
	args := []string{"-json"}
	for _, name := range TagNames {
		args = append(args, "-"+name)
	}
	args = append(args, path)

	out, err := exec.Command(e.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool read: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parsing exiftool output: %w", err)
	}
	if len(raw) == 0 {
		return Values{}, nil
	}

	vals := Values{}
	for _, name := range TagNames {
		v, ok := raw[0][name]
		if !ok {
			continue
		}
		switch x := v.(type) {
		case string:
			vals[name] = x
		case float64:
			vals[name] = fmt.Sprintf("%v", x)
		case []any:
			var list []string
			for _, item := range x {
				if s, ok := item.(string); ok {
					list = append(list, s)
				}
			}
			vals[name] = list
		}
	}
	return vals, nil
}

// Write sets the given tag values on the file. List values replace the
// prior list wholesale.
func (e *ExifTool) Write(path string, vals Values) error {
	args := []string{"-overwrite_original"}
	for name, v := range vals {
		switch x := v.(type) {
		case string:
			args = append(args, fmt.Sprintf("-%s=%s", name, x))
		case []string:
			// Clear first so the list is replaced, not appended to.
			args = append(args, fmt.Sprintf("-%s=", name))
			for _, item := range x {
				args = append(args, fmt.Sprintf("-%s+=%s", name, item))
			}
		default:
			return fmt.Errorf("tag %s: unsupported value type %T", name, v)
		}
	}
	args = append(args, path)

	cmd := exec.Command(e.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("exiftool write: %w: %s", err, stderr.String())
	}
	return nil
}
