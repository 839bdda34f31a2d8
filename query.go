package client

import (
	"net/url"
	"strconv"
	"strings"
)

// Int returns a pointer to v, for optional integer filters. A nil filter
// omits the query key entirely; a pointer to zero sends it as 0.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer to v, for optional 64-bit filters.
func Int64(v int64) *int64 {
	return &v
}

func setInt(v url.Values, key string, value int) {
	v.Set(key, strconv.Itoa(value))
}

func setInt64(v url.Values, key string, value int64) {
	v.Set(key, strconv.FormatInt(value, 10))
}

func setOptionalInt(v url.Values, key string, value *int) {
	if value != nil {
		setInt(v, key, *value)
	}
}

func setOptionalInt64(v url.Values, key string, value *int64) {
	if value != nil {
		setInt64(v, key, *value)
	}
}

// setIntList joins ids with commas, omitting the key when the list is empty.
func setIntList(v url.Values, key string, ids []int) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	v.Set(key, strings.Join(parts, ","))
}

func setStringList(v url.Values, key string, values []string) {
	if len(values) > 0 {
		v.Set(key, strings.Join(values, ","))
	}
}
