package source

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/bmatcuk/doublestar/v4"
)

// Rule selects elements to remove from a feed.
//
// Pattern is a doublestar glob matched against the slash-joined local tag
// path from the root element, e.g. "**/openingHours" or
// "Stations/Station/Accessibility/AccessibilityType". When Text is set the
// element's trimmed text must also equal it exactly.
type Rule struct {
	Pattern string
	Text    string
}

// Validate checks that the rule's pattern is a valid glob.
func (r Rule) Validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("prune rule: pattern is required")
	}
	if !doublestar.ValidatePattern(r.Pattern) {
		return fmt.Errorf("prune rule: invalid pattern %q", r.Pattern)
	}
	return nil
}

func (r Rule) matches(el *etree.Element, path string) bool {
	ok, err := doublestar.Match(r.Pattern, path)
	if err != nil || !ok {
		return false
	}
	return r.Text == "" || strings.TrimSpace(el.Text()) == r.Text
}

// Prune removes every element matched by any rule, together with its
// subtree, and returns how many elements were removed. Matches are
// collected before anything is removed.
func Prune(doc *etree.Document, rules []Rule) (int, error) {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return 0, err
		}
	}
	if len(rules) == 0 {
		return 0, nil
	}

	var doomed []*etree.Element
	var walk func(el *etree.Element, path string)
	walk = func(el *etree.Element, path string) {
		for _, child := range el.ChildElements() {
			childPath := child.Tag
			if path != "" {
				childPath = path + "/" + child.Tag
			}
			if matchesAny(rules, child, childPath) {
				doomed = append(doomed, child)
				continue
			}
			walk(child, childPath)
		}
	}
	walk(&doc.Element, "")

	for _, el := range doomed {
		if parent := el.Parent(); parent != nil {
			parent.RemoveChild(el)
		}
	}
	return len(doomed), nil
}

func matchesAny(rules []Rule, el *etree.Element, path string) bool {
	for _, r := range rules {
		if r.matches(el, path) {
			return true
		}
	}
	return false
}
