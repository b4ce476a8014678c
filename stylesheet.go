package overlay

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Rule is one block of a StyleSheet, such as "@position-try --name".
type Rule struct {
	Selector     string
	Declarations Declarations
}

// StyleSheet is a scoped set of rules owned by exactly one strategy
// instance. The platform reads adopted sheets during its anchor layout pass.
type StyleSheet struct {
	rules []Rule
}

// NewStyleSheet creates an empty StyleSheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// AddRule appends a rule. Rules keep insertion order.
func (s *StyleSheet) AddRule(selector string, decls Declarations) {
	s.rules = append(s.rules, Rule{Selector: selector, Declarations: decls})
}

// Rule returns the declarations of the first rule with the given selector.
func (s *StyleSheet) Rule(selector string) (*Declarations, bool) {
	for i := range s.rules {
		if s.rules[i].Selector == selector {
			return &s.rules[i].Declarations, true
		}
	}
	return nil, false
}

// Rules returns the rules in order. The slice must not be modified.
func (s *StyleSheet) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules.
func (s *StyleSheet) Len() int {
	return len(s.rules)
}

// Clear removes every rule.
func (s *StyleSheet) Clear() {
	s.rules = nil
}

// CSSText renders the sheet, one rule per line.
func (s *StyleSheet) CSSText() string {
	var sb strings.Builder
	for _, r := range s.rules {
		sb.WriteString(r.Selector)
		sb.WriteString(" { ")
		sb.WriteString(r.Declarations.CSSText())
		sb.WriteString(" }\n")
	}
	return sb.String()
}

// IDGenerator produces identifiers that are unique for the lifetime of the
// strategies sharing it.
type IDGenerator func() string

// UUIDs returns a generator backed by random UUIDs.
func UUIDs() IDGenerator {
	return func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}

// SequentialIDs returns a generator yielding "1", "2", ... Each call to
// SequentialIDs starts its own sequence.
func SequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}
