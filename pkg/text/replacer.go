package text

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ErrNotText is returned when content cannot be decoded as UTF-8 text.
var ErrNotText = errors.Base("content is not valid UTF-8 text")

// 🔄 Rule is a single literal replacement applied to file content
type Rule struct {
	Old string // literal text to search for
	New string // text to substitute
}

// 📊 Result holds the outcome of applying a rule set to one file
type Result struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	ReplacementCount int
	WasModified      bool
}

// 🔧 Replacer applies an ordered rule set via literal substring substitution
type Replacer struct{}

// 🏭 NewReplacer creates a new Replacer
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Apply runs every rule in order over content. Each rule operates on the
// result of the previous one, so rule order matters whenever one rule's
// old-string is a substring of another's new-string. WasModified compares
// the final content against the original, so identity rules (old == new)
// and rule chains that cancel out report an unmodified result.
func (r *Replacer) Apply(ctx context.Context, content []byte, rules []Rule) (*Result, error) {
	if !utf8.Valid(content) {
		return nil, errors.Errorf("decoding content: %w", ErrNotText)
	}

	result := &Result{
		OriginalContent: content,
		ModifiedContent: content,
	}

	current := string(content)
	for _, rule := range rules {
		// Skip empty rules
		if rule.Old == "" {
			continue
		}

		next := strings.ReplaceAll(current, rule.Old, rule.New)
		if next != current {
			result.ReplacementCount += strings.Count(current, rule.Old)
		}
		current = next
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = !bytes.Equal(result.ModifiedContent, result.OriginalContent)
	return result, nil
}

// ValidateRules checks that every rule has a non-empty old-string
func (r *Replacer) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old is required", i)
		}
	}
	return nil
}
