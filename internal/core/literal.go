package core

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var literalOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// IsEmptyProps reports whether props carries no configuration. Absent, null
// and falsy scalars all count as empty and are emitted as {}.
func IsEmptyProps(props json.RawMessage) bool {
	trimmed := bytes.TrimSpace(props)
	if len(trimmed) == 0 {
		return true
	}
	res := gjson.ParseBytes(trimmed)
	switch res.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return res.Num == 0
	case gjson.String:
		return res.Str == ""
	}
	return false
}

// PropsLiteral renders props as an indented object literal, keeping the key
// order of the input.
func PropsLiteral(props json.RawMessage) string {
	if IsEmptyProps(props) {
		return "{}"
	}
	out := pretty.PrettyOptions(bytes.TrimSpace(props), literalOptions)
	return string(bytes.TrimRight(out, "\n"))
}
