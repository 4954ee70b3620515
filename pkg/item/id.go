// Package item defines the ritual item shapes shared by the catalog, the
// overlay store and the progress store.
package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies an item. Catalog and custom items share the type but live in
// disjoint ranges.
type ID int64

// ParseID converts a decimal string into an ID.
func ParseID(raw string) (ID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("item: invalid id %q", raw)
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON writes the id as a quoted decimal so it survives consumers
// that decode numbers as float64.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

// UnmarshalJSON accepts both the quoted form and a bare number.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = v
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item: invalid id %s", string(b))
	}
	*id = ID(n)
	return nil
}
