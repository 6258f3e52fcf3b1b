package docid

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
)

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		parsed, err := Parse(id.String())
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		if parsed != id {
			t.Fatalf("round trip mismatch: %v != %v", parsed, id)
		}
	}
}

func TestParseRejectsBadAlphabet(t *testing.T) {
	cases := []string{
		"",
		"not-an-id!",
		"0OIl",                    // characters excluded from the Base58 alphabet
		strings.Repeat("z", 1000), // far too long
	}
	for _, input := range cases {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		} else if !errors.Is(err, ErrInvalidID) {
			t.Errorf("Parse(%q) error %v does not wrap ErrInvalidID", input, err)
		}
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	short := base58.Encode([]byte("8bytes!!"))
	if _, err := Parse(short); err == nil {
		t.Fatalf("Parse(%q) succeeded for 8-byte payload", short)
	}
}

func TestCompareMatchesBytes(t *testing.T) {
	a := New()
	if a.Compare(a) != 0 {
		t.Fatal("identifier does not compare equal to itself")
	}
	b := New()
	if got, want := a.Compare(b), -b.Compare(a); got != want {
		t.Fatalf("Compare not antisymmetric: %d vs %d", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	id := New()
	encoded, err := json.Marshal(id)
	if err != nil {
		t.Fatal(err)
	}
	var decoded DocID
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != id {
		t.Fatalf("JSON round trip mismatch: %v != %v", decoded, id)
	}
}

func TestGenerateUnique(t *testing.T) {
	const count = 10000
	seen := make(map[DocID]struct{}, count)
	for i := 0; i < count; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier after %d generations: %v", i, id)
		}
		seen[id] = struct{}{}
	}
}
