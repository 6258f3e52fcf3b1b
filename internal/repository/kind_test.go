package repository

import "testing"

func TestKindFilenames(t *testing.T) {
	cases := map[string]struct {
		kind Kind
		want string
	}{
		"document":  {KindDocument, "document.pdf"},
		"preview":   {KindPreview, "preview.png"},
		"plaintext": {KindPlaintext, "document.txt"},
		"metadata":  {KindMetadata, "metadata.json"},
		"other":     {OtherKind("juicer.log"), "juicer.log"},
	}
	for name, tc := range cases {
		if got := tc.kind.Filename(); got != tc.want {
			t.Errorf("%s: filename %q, want %q", name, got, tc.want)
		}
	}
}

func TestKindEquality(t *testing.T) {
	if OtherKind("a") == OtherKind("b") {
		t.Fatal("other kinds with different names must differ")
	}
	if OtherKind("a") != OtherKind("a") {
		t.Fatal("other kinds with equal names must be equal")
	}
	// Same filename, different variant: still distinct kinds.
	if OtherKind("document.pdf") == KindDocument {
		t.Fatal("an other fragment named like a canonical file is not that kind")
	}
}

func TestParseKind(t *testing.T) {
	if ParseKind("document") != KindDocument {
		t.Fatal("document did not parse to canonical kind")
	}
	if ParseKind("metadata") != KindMetadata {
		t.Fatal("metadata did not parse to canonical kind")
	}
	if got := ParseKind("notes.txt"); got != OtherKind("notes.txt") {
		t.Fatalf("unexpected kind for arbitrary name: %v", got)
	}
}
