package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestFirst(t *testing.T) {
	doc := gjson.Parse(`{"a": "", "b": null, "c": {"x": 1}, "d": [1], "e": "  value ", "f": 42, "g": {"h": "nested"}}`)
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{name: "skips empty null object and array", paths: []string{"a", "b", "c", "d", "e"}, want: "value"},
		{name: "number", paths: []string{"missing", "f"}, want: "42"},
		{name: "nested path", paths: []string{"g.h"}, want: "nested"},
		{name: "nothing", paths: []string{"missing"}, want: ""},
		{name: "no paths", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, First(doc, tt.paths...))
		})
	}
}
