package classifier

// Classification is the syntax-only class of one identifier occurrence.
type Classification string

const (
	// Definition marks an occurrence that introduces a new binding.
	Definition Classification = "Definition"
	// Reference marks an occurrence that consumes an existing binding.
	Reference Classification = "Reference"
	// Ignored marks a structural placeholder occurrence that carries no
	// binding information of its own.
	Ignored Classification = "Ignored"
	// Unknown marks an occurrence in a syntactic slot the rule table does
	// not cover; it is a diagnostic, not an error.
	Unknown Classification = "Unknown"
)

// Tag returns the single-letter output tag, or empty for classes that are
// not emitted on the record stream.
func (c Classification) Tag() string {
	switch c {
	case Definition:
		return "D"
	case Reference:
		return "R"
	}
	return ""
}

// Record is one classified identifier occurrence. Path is the structural
// path from the tree root, populated for Unknown records and, in debug
// mode, for every record.
type Record struct {
	Name       string
	File       string
	Line       int
	Col        int
	SourceLine string
	Class      Classification
	Path       string
}
