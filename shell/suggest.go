package shell

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const invalidItemText = `Invalid menu item; type "?" for a list of available commands`

// invalidItemMessage builds the user-facing message for an unresolved
// trigger, appending the nearest registered trigger when one fuzzy-matches.
func (s *Shell) invalidItemMessage(trigger string) string {
	msg := invalidItemText
	if suggestion := s.suggestTrigger(trigger); suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return s.styles.RenderMessage(msg)
}

// suggestTrigger ranks the typed trigger against every trigger currently
// resolvable (global aliases plus the current screen's) and returns the
// closest match, or empty when nothing is close.
func (s *Shell) suggestTrigger(trigger string) string {
	candidates := s.visibleTriggers()
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(trigger, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func (s *Shell) visibleTriggers() []string {
	seen := make(map[string]struct{})
	var triggers []string
	collect := func(items []*MenuItem) {
		for _, item := range items {
			for _, trigger := range item.triggers {
				if _, ok := seen[trigger]; ok {
					continue
				}
				seen[trigger] = struct{}{}
				triggers = append(triggers, trigger)
			}
		}
	}
	collect(s.global.OrderedItems())
	if s.current != nil {
		collect(s.current.OrderedItems())
	}
	return triggers
}
