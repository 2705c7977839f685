package measure

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// rule is a `font-size` declaration of a stylesheet, for one selector.
type rule struct {
	sel       cascadia.Sel
	spec      cascadia.Specificity
	order     int
	value     string
	important bool
}

// beats is true if r wins over other in the cascade.
func (r rule) beats(other rule) bool {
	if r.important != other.important {
		return r.important
	}
	if r.spec != other.spec {
		return other.spec.Less(r.spec)
	}
	return r.order > other.order
}

// parseRules extracts the `font-size` rules of a stylesheet. At-rules are
// skipped, as are selectors cascadia does not understand.
func parseRules(stylesheet string) ([]rule, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	var rules []rule
	order := 0
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		for _, decl := range r.Declarations {
			if strings.ToLower(decl.Property) != "font-size" {
				continue
			}
			order++
			for _, s := range r.Selectors {
				sel, err := cascadia.Parse(s)
				if err != nil {
					tracer().Infof("skipping selector %q: %v", s, err)
					continue
				}
				rules = append(rules, rule{
					sel:       sel,
					spec:      sel.Specificity(),
					order:     order,
					value:     decl.Value,
					important: decl.Important,
				})
			}
		}
	}
	tracer().Debugf("stylesheet has %d font-size rules", len(rules))
	return rules, nil
}

// match returns the winning rule for an element.
func match(rules []rule, el *html.Node) (rule, bool) {
	var best rule
	found := false
	for _, r := range rules {
		if !r.sel.Match(el) {
			continue
		}
		if !found || r.beats(best) {
			best, found = r, true
		}
	}
	return best, found
}
