package histlog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// appendEntry appends the on-disk line form of e to buf:
// <timestamp> [<LEVEL>] <message>
// The layout is the persisted state format; rotated archives keep it.
func appendEntry(buf []byte, e Entry, tsFormat string) []byte {
	if tsFormat == "" {
		tsFormat = time.RFC3339Nano
	}
	buf = e.Time.AppendFormat(buf, tsFormat)
	buf = append(buf, ' ', '[')
	buf = append(buf, e.Level...)
	buf = append(buf, ']', ' ')
	buf = append(buf, e.Message...)
	return buf
}

// formatArgs renders variadic values as one space-separated message.
func formatArgs(args []any) string {
	var buf []byte
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its message representation.
// Fallback to go-spew/spew with data structure information for types
// that are not explicitly supported.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339Nano)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// For all other types (structs, maps, pointers, arrays, etc.), delegate to spew.
		var b bytes.Buffer

		// Use a custom dumper for log-friendly, compact output.
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Cleaner for logs
			DisableCapacities:       true, // Less noise
			SortKeys:                true, // Consistent map output
		}

		dumper.Fdump(&b, val)

		// Trim trailing new line added by spew
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
