package store

import (
	"encoding/json"
	"log/slog"
)

// ReadJSON decodes the record at key into v. It reports false with a nil
// error when the record does not exist yet, leaving v untouched.
func ReadJSON(p Persistence, key string, v any) (bool, error) {
	data, err := p.Read(key)
	if err != nil {
		if IsMissing(err) {
			return false, nil
		}
		return false, &PersistenceError{Op: "read", Key: key, Err: err}
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("store: undecodable record", "key", key, "error", err)
		return false, &PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// WriteJSON encodes v and replaces the record at key in one write.
func WriteJSON(p Persistence, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := p.Write(key, data); err != nil {
		return &PersistenceError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// EraseRecord removes the record at key. Erasing a missing record succeeds.
func EraseRecord(p Persistence, key string) error {
	if err := p.Erase(key); err != nil && !IsMissing(err) {
		return &PersistenceError{Op: "erase", Key: key, Err: err}
	}
	return nil
}
