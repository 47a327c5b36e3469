package resolve

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/raphi011/teleproj/internal/store"
)

// Errors for resolution failures. These are expected outcomes of user input.
var (
	ErrNoMatch   = errors.New("no project found")
	ErrAmbiguous = errors.New("query matches multiple projects")
)

// Kind describes how a query was resolved.
type Kind int

const (
	ByIndex Kind = iota
	ExactName
	Fuzzy
)

func (k Kind) String() string {
	switch k {
	case ByIndex:
		return "index"
	case ExactName:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is a successful resolution.
type Outcome struct {
	Kind  Kind
	Entry store.Entry
}

// Path returns the resolved project path.
func (o Outcome) Path() string {
	return o.Entry.Path
}

// NoMatchError reports a query that matched nothing.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no project found matching %q", e.Query)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// AmbiguousError reports a query whose best fuzzy matches tie.
// Candidates are ordered by index.
type AmbiguousError struct {
	Query      string
	Candidates []store.Entry
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d projects match %q", len(e.Candidates), e.Query)
}

func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// Resolve picks the project designated by query.
func Resolve(entries []store.Entry, query string) (Outcome, error) {
	if query == "" {
		return Outcome{}, &NoMatchError{Query: query}
	}

	if isIndex(query) {
		return byIndex(entries, query)
	}

	q := strings.ToLower(query)

	if e, ok := exactName(entries, q); ok {
		return Outcome{Kind: ExactName, Entry: e}, nil
	}

	best := bestMatches(entries, q)
	switch len(best) {
	case 0:
		return Outcome{}, &NoMatchError{Query: query}
	case 1:
		return Outcome{Kind: Fuzzy, Entry: best[0]}, nil
	default:
		return Outcome{}, &AmbiguousError{Query: query, Candidates: best}
	}
}

// isIndex reports whether s is an unsigned decimal integer with no sign,
// whitespace or other decoration.
func isIndex(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func byIndex(entries []store.Entry, query string) (Outcome, error) {
	n, err := strconv.ParseUint(query, 10, 64)
	if err != nil {
		// Only overflow is possible here; such an index is beyond any list.
		return Outcome{}, &store.OutOfRangeError{Index: ^uint64(0), Input: query, Len: len(entries)}
	}
	if n >= uint64(len(entries)) {
		return Outcome{}, &store.OutOfRangeError{Index: n, Input: query, Len: len(entries)}
	}
	return Outcome{Kind: ByIndex, Entry: entries[n]}, nil
}

// exactName returns the single entry whose lowercase name equals q.
// Two or more equal names are left to the fuzzy stage.
func exactName(entries []store.Entry, q string) (store.Entry, bool) {
	var found store.Entry
	count := 0
	for _, e := range entries {
		if strings.ToLower(e.Name()) == q {
			found = e
			count++
		}
	}
	return found, count == 1
}

// matchKind ranks how tightly a query matched a name. Lower is better.
type matchKind int

const (
	matchPrefix matchKind = iota
	matchSubstring
	matchSubsequence
	matchNone
)

// score is the tie-break tuple for a fuzzy candidate.
type score struct {
	kind   matchKind
	length int
	index  int
}

// compare orders scores by (kind, length, index).
func (a score) compare(b score) int {
	if c := a.quality(b); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

// quality orders scores by (kind, length) only. Scores that compare equal
// here are indistinguishable as matches.
func (a score) quality(b score) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.length, b.length)
}

func classify(name, q string) matchKind {
	switch {
	case strings.HasPrefix(name, q):
		return matchPrefix
	case strings.Contains(name, q):
		return matchSubstring
	case isSubsequence(name, q):
		return matchSubsequence
	default:
		return matchNone
	}
}

// isSubsequence reports whether every rune of q appears in s in order.
func isSubsequence(s, q string) bool {
	for _, r := range s {
		if q == "" {
			return true
		}
		qr, size := utf8.DecodeRuneInString(q)
		if r == qr {
			q = q[size:]
		}
	}
	return q == ""
}

type candidate struct {
	entry store.Entry
	score score
}

// bestMatches returns every entry tied on the best (kind, length) score,
// in index order.
func bestMatches(entries []store.Entry, q string) []store.Entry {
	var candidates []candidate
	for _, e := range entries {
		name := strings.ToLower(e.Name())
		kind := classify(name, q)
		if kind == matchNone {
			continue
		}
		candidates = append(candidates, candidate{
			entry: e,
			score: score{kind: kind, length: utf8.RuneCountInString(name), index: e.Index},
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		return a.score.compare(b.score)
	})

	top := candidates[0].score
	var best []store.Entry
	for _, c := range candidates {
		if c.score.quality(top) != 0 {
			break
		}
		best = append(best, c.entry)
	}
	return best
}
