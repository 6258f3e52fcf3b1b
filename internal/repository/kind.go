package repository

// Kind identifies one fragment within a bundle. The canonical kinds map to
// fixed filenames; OtherKind carries an arbitrary filename for miscellaneous
// fragments such as extraction logs. There is no collision protection: naming
// an Other fragment after a canonical filename overwrites that fragment.
type Kind struct {
	variant string
	name    string
}

var (
	// KindDocument is the raw uploaded document.
	KindDocument = Kind{variant: "document"}
	// KindPreview is the rendered preview image.
	KindPreview = Kind{variant: "preview"}
	// KindPlaintext is the extracted text of the document.
	KindPlaintext = Kind{variant: "plaintext"}
	// KindMetadata is the structured metadata record.
	KindMetadata = Kind{variant: "metadata"}
)

// OtherKind returns a fragment kind for an arbitrary filename.
func OtherKind(name string) Kind {
	return Kind{variant: "other", name: name}
}

// ParseKind maps a canonical kind name to its Kind; any other string becomes
// an Other fragment with that string as its filename.
func ParseKind(s string) Kind {
	switch s {
	case "document":
		return KindDocument
	case "preview":
		return KindPreview
	case "plaintext":
		return KindPlaintext
	case "metadata":
		return KindMetadata
	default:
		return OtherKind(s)
	}
}

// Filename returns the file name the fragment is stored under.
func (k Kind) Filename() string {
	switch k.variant {
	case "document":
		return "document.pdf"
	case "preview":
		return "preview.png"
	case "plaintext":
		return "document.txt"
	case "metadata":
		return "metadata.json"
	default:
		return k.name
	}
}

// String returns the kind's canonical name, or the carried filename for
// Other fragments.
func (k Kind) String() string {
	if k.variant == "other" {
		return k.name
	}
	return k.variant
}
