package docid

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// Size is the raw identifier width in bytes.
const Size = 16

// ErrInvalidID marks text that does not decode to a document identifier.
var ErrInvalidID = errors.New("invalid document id")

// DocID names exactly one bundle. The zero value is not a valid identifier;
// obtain one through New or Parse.
type DocID struct {
	raw [Size]byte
}

// New returns a fresh, statistically unique identifier.
func New() DocID {
	return DocID{raw: [Size]byte(uuid.New())}
}

// Parse decodes the canonical textual form produced by String. It returns an
// error wrapping ErrInvalidID when the text contains characters outside the
// Base58 alphabet or decodes to the wrong number of bytes.
func Parse(text string) (DocID, error) {
	decoded, err := base58.Decode(text)
	if err != nil {
		return DocID{}, fmt.Errorf("%w: %q: %v", ErrInvalidID, text, err)
	}
	if len(decoded) != Size {
		return DocID{}, fmt.Errorf("%w: %q decodes to %d bytes, want %d", ErrInvalidID, text, len(decoded), Size)
	}
	var id DocID
	copy(id.raw[:], decoded)
	return id, nil
}

// String renders the identifier in its canonical Base58 form.
func (d DocID) String() string {
	return base58.Encode(d.raw[:])
}

// Bytes returns a copy of the raw identifier bytes.
func (d DocID) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d.raw[:])
	return out
}

// Compare orders identifiers over their raw bytes. The ordering carries no
// semantic meaning; it exists for deterministic tie-breaking.
func (d DocID) Compare(other DocID) int {
	return bytes.Compare(d.raw[:], other.raw[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d DocID) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DocID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = id
	return nil
}
