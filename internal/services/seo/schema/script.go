package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Marshal encodes doc as indented JSON. encoding/json escapes <, > and &, so
// the output can never close the surrounding script element.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Script renders doc inside a JSON-LD script element. A nil document renders
// nothing.
func Script(doc Document) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if doc == nil {
			return nil
		}
		payload, err := Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal json-ld: %w", err)
		}
		if _, err := io.WriteString(w, `<script type="application/ld+json">`); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
		_, err = io.WriteString(w, "</script>")
		return err
	})
}
