package depmodel

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/mod/modfile"
)

func probeJSON(b []byte) error {
	if !json.Valid(b) {
		return fmt.Errorf("depmodel: invalid JSON")
	}
	return nil
}

func probeXML(b []byte) error {
	d := xml.NewDecoder(bytes.NewReader(b))
	for {
		_, err := d.Token()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return fmt.Errorf("depmodel: invalid XML: %w", err)
		}
	}
}

func probeGoMod(b []byte) error {
	if _, err := modfile.Parse("go.mod", b, nil); err != nil {
		return fmt.Errorf("depmodel: invalid go.mod: %w", err)
	}
	return nil
}
