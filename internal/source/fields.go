package source

import (
	"strings"

	"github.com/tidwall/gjson"
)

// First returns the first non-empty scalar found under paths, trying them in
// order. Objects, arrays and nulls are skipped.
func First(doc gjson.Result, paths ...string) string {
	for _, path := range paths {
		v := doc.Get(path)
		if !v.Exists() || v.IsObject() || v.IsArray() || v.Type == gjson.Null {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}
