package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatTOML = "toml"
)

// writeFormatted renders v as JSON or TOML, or calls text for plain output.
func writeFormatted(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case formatText, "":
		text(w)
		return nil
	case formatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatJSON, formatTOML)
	}
}
