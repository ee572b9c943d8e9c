package classify

import (
	"strings"

	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
)

// Rule assigns Type when the lower-cased text contains any of Keywords.
type Rule struct {
	Type     schedule.PickupType
	Keywords []string
}

// Rules is the ordered keyword table.
var Rules = []Rule{
	{Type: schedule.Burnable, Keywords: []string{"可燃", "燃える", "burnable", "combustible"}},
	{Type: schedule.Bulk, Keywords: []string{"不燃", "燃やさない", "ceramic", "metal"}},
	{Type: schedule.Plastic, Keywords: []string{"プラ", "plastic", "容器", "包装"}},
	{Type: schedule.Cans, Keywords: []string{"缶", "かん", "can"}},
	{Type: schedule.Bottles, Keywords: []string{"びん", "瓶", "bottle"}},
	{Type: schedule.Paper, Keywords: []string{"紙", "古紙", "新聞", "雑誌", "段ボール", "paper"}},
	// 粗大ごみ only when nothing more specific matched
	{Type: schedule.Bulk, Keywords: []string{"粗大", "大型"}},
}

// Default is returned when no rule matches.
const Default = schedule.Burnable

// Match reports whether text contains one of the rule's keywords.
func (r Rule) Match(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify returns the pickup type for a header/value pair.
func Classify(header, value string) schedule.PickupType {
	text := strings.ToLower(header + " " + value)
	for _, r := range Rules {
		if r.Match(text) {
			return r.Type
		}
	}
	return Default
}
