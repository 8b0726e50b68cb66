package password

import "iter"

// Passwords returns a lazy, caller-driven sequence of independently
// generated passwords. It yields at most rules.MaxEnumerations pairs and
// terminates early when the caller breaks or a generation fails; every
// item is a fresh Generate call, with no shared state across iterations
// beyond the counter. A nil rules uses a fresh default RuleSet.
//
// Example:
//
//	for pw, err := range gen.Passwords(rules) {
//		if err != nil {
//			return err
//		}
//		store(pw)
//	}
func (g *Generator) Passwords(rules *RuleSet) iter.Seq2[string, error] {
	if rules == nil {
		rules = NewRuleSet()
	}

	return func(yield func(string, error) bool) {
		for i := 0; i < rules.maxEnumerations; i++ {
			pw, err := g.Generate(rules)
			if !yield(pw, err) || err != nil {
				return
			}
		}
	}
}
