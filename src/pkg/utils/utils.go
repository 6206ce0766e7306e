package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Result is the envelope every usecase returns to the delivery layer.
type Result struct {
	Data  interface{}
	Error error
}

// ConvertString marshals any value for log metadata.
func ConvertString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// CapitalizeWords uppercases the first letter of every word, the
// normalization applied to member name fields before persistence.
func CapitalizeWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
