package store

import (
	"context"
	"errors"
	"testing"
)

func TestDiskvRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	keys := []string{KeyOverrides, DayKey("2024-05-03"), OrderKey("custom:17"), OrderKey("a/b c")}
	for i, key := range keys {
		if err := WriteJSON(p, key, []int{i}); err != nil {
			t.Fatalf("write %s: %v", key, err)
		}
	}

	for i, key := range keys {
		var got []int
		ok, err := ReadJSON(p, key, &got)
		if err != nil || !ok {
			t.Fatalf("read %s: ok=%v err=%v", key, ok, err)
		}
		if len(got) != 1 || got[0] != i {
			t.Fatalf("read %s: got %v", key, got)
		}
	}

	days := p.Keys(context.Background(), PrefixDay)
	if len(days) != 1 || days[0] != DayKey("2024-05-03") {
		t.Fatalf("unexpected day keys %v", days)
	}

	orders := p.Keys(context.Background(), PrefixOrder)
	if len(orders) != 2 {
		t.Fatalf("expected 2 order keys, got %v", orders)
	}
	for _, key := range orders {
		if _, ok := CategoryForOrderKey(key); !ok {
			t.Fatalf("order key %q does not decode", key)
		}
	}
}

func TestReadJSONMissingRecord(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	var v map[string]int
	ok, err := ReadJSON(p, KeyTargets, &v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing record")
	}
	if err := EraseRecord(p, KeyTargets); err != nil {
		t.Fatalf("erase missing record: %v", err)
	}
}

func TestReadJSONCorruptRecord(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write(KeyTombstones, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var v []int
	_, err = ReadJSON(p, KeyTombstones, &v)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestOrderKeyRoundTrip(t *testing.T) {
	for _, name := range []string{"morning", "custom:42", "with/slash", ""} {
		got, ok := CategoryForOrderKey(OrderKey(name))
		if !ok || got != name {
			t.Fatalf("round trip %q: got %q ok=%v", name, got, ok)
		}
	}
}

func TestMalformedKeyRejected(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write("days/", []byte("{}")); err == nil {
		t.Fatalf("expected error for trailing slash")
	}
}
