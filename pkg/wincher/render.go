package wincher

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

const (
	placeholder = "N/A"

	titleLength = 80
	topResults  = 10
)

// Render formats a raw API payload for the named operation. It fails only
// for unknown operation names; any payload shape renders.
func Render(name string, payload []byte, args map[string]any) (string, error) {
	b, ok := bindings[name]

	if !ok {
		return "", &UnknownOperationError{Name: name}
	}

	doc := gjson.ParseBytes(payload)
	return b.Render(doc, args), nil
}

type lines []string

func (l *lines) add(format string, a ...any) {
	*l = append(*l, fmt.Sprintf(format, a...))
}

func (l *lines) blank() {
	*l = append(*l, "")
}

func (l lines) String() string {
	return strings.Join(l, "\n") + "\n"
}

func header(title string) lines {
	return lines{title, ""}
}

// value returns the scalar at path, or def when the path is absent or null
// at any depth.
func value(r gjson.Result, path, def string) string {
	v := r.Get(path)

	if !v.Exists() || v.Type == gjson.Null {
		return def
	}

	return v.String()
}

// items returns the elements of the array at path. Anything else yields none.
func items(r gjson.Result, path string) []gjson.Result {
	v := r.Get(path)

	if !v.IsArray() {
		return nil
	}

	return v.Array()
}

// present reports whether the value at path is set to something other than
// null, false, zero or an empty string, array or object.
func present(r gjson.Result, path string) bool {
	v := r.Get(path)

	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.JSON:
		if v.IsArray() {
			return len(v.Array()) > 0
		}

		return len(v.Map()) > 0
	}

	return false
}

func arg(args map[string]any, name string) string {
	value, err := cast.ToStringE(args[name])

	if err != nil || value == "" {
		return placeholder
	}

	return value
}

func truncate(s string, n int) string {
	runes := []rune(s)

	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
