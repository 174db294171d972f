// Package ingest adapts semstreams entity triples into the rdf term model.
//
// Upstream extraction pipelines publish graph entities as
// semstreams/message.Triple statements with loosely typed objects and a
// per-statement confidence. This package classifies each statement into the
// IRI / blank node / literal model the ontology builder consumes, dropping
// statements below a configurable confidence floor.
package ingest

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/semreason/rdf"
	"github.com/c360studio/semreason/vocabulary/xsd"
)

// Options tunes message conversion.
type Options struct {
	// MinConfidence drops statements whose confidence is below the floor.
	// Zero keeps everything.
	MinConfidence float64

	// Logger receives Debug entries for dropped statements. Nil falls back
	// to slog.Default().
	Logger *slog.Logger
}

// FromMessages converts semstreams triples into rdf triples.
//
// Subjects and predicates are resource terms: a "_:" prefix marks a blank
// node, anything else is an IRI. Objects are classified by Go type: strings
// become IRIs when they look like one, blank nodes on a "_:" prefix, and
// plain literals otherwise; bools, integers, floats, and timestamps become
// literals typed with the matching xsd datatype.
func FromMessages(triples []message.Triple, opts Options) []rdf.Triple {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]rdf.Triple, 0, len(triples))
	for _, tr := range triples {
		if tr.Confidence < opts.MinConfidence {
			logger.Debug("dropping low-confidence statement",
				slog.String("subject", tr.Subject),
				slog.String("predicate", tr.Predicate),
				slog.Float64("confidence", tr.Confidence))
			continue
		}
		out = append(out, rdf.Triple{
			Subject:   resourceTerm(tr.Subject),
			Predicate: rdf.NewIRI(tr.Predicate),
			Object:    objectTerm(tr.Object),
		})
	}
	return out
}

// resourceTerm classifies a subject or predicate string.
func resourceTerm(value string) rdf.Term {
	if label, ok := strings.CutPrefix(value, "_:"); ok {
		return rdf.NewBlank(label)
	}
	return rdf.NewIRI(value)
}

// objectTerm classifies a loosely typed object value.
func objectTerm(value any) rdf.Term {
	switch v := value.(type) {
	case string:
		if label, ok := strings.CutPrefix(v, "_:"); ok {
			return rdf.NewBlank(label)
		}
		if looksLikeIRI(v) {
			return rdf.NewIRI(v)
		}
		return rdf.NewLiteral(v)
	case bool:
		return rdf.NewTypedLiteral(strconv.FormatBool(v), xsd.Boolean)
	case int:
		return rdf.NewTypedLiteral(strconv.Itoa(v), xsd.Integer)
	case int64:
		return rdf.NewTypedLiteral(strconv.FormatInt(v, 10), xsd.Integer)
	case float64:
		return rdf.NewTypedLiteral(strconv.FormatFloat(v, 'g', -1, 64), xsd.Double)
	case time.Time:
		return rdf.NewTypedLiteral(v.Format(time.RFC3339), xsd.DateTime)
	default:
		return rdf.NewLiteral(fmt.Sprintf("%v", v))
	}
}

// looksLikeIRI reports whether a string object should be read as a
// reference rather than a literal. Absolute IRIs with a scheme qualify;
// bare words and sentences do not.
func looksLikeIRI(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	if strings.Contains(s, "://") {
		return true
	}
	return strings.HasPrefix(s, "urn:") || strings.HasPrefix(s, "mailto:")
}
