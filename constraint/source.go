package constraint

import "fmt"

// Source records where a constraint came from.
type Source int

const (
	// SourceDomain marks a constraint derived from an rdfs:domain
	// declaration on a property.
	SourceDomain Source = iota

	// SourceRestriction marks a constraint parsed from an owl:Restriction
	// blank node.
	SourceRestriction

	// SourceRefined marks a constraint produced by Meet.
	SourceRefined
)

// String returns the string representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceDomain:
		return "domain"
	case SourceRestriction:
		return "restriction"
	case SourceRefined:
		return "refined"
	default:
		return fmt.Sprintf("source(%d)", s)
	}
}

// ParseSource parses a string into a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "domain":
		return SourceDomain, nil
	case "restriction":
		return SourceRestriction, nil
	case "refined":
		return SourceRefined, nil
	default:
		return Source(0), fmt.Errorf("unknown constraint source: %s", s)
	}
}

// IsValid reports whether the source is a recognized value.
func (s Source) IsValid() bool {
	return s >= SourceDomain && s <= SourceRefined
}
