package rules

import "slices"

// Active filters a rule table down to the groups applicable under the
// given scenario, in declaration order. A group with no scenario
// restriction is always active; otherwise the scenario must be a member of
// the group's list.
//
// When filter is non-empty a group is kept only if it declares at least
// one of the filtered attributes. The caller decides which exact subset to
// execute; Active only settles group inclusion. It reads the table and
// never touches attribute data.
func Active(table []*Group, scenario string, filter []string) []*Group {
	active := make([]*Group, 0, len(table))
	for _, g := range table {
		if g == nil {
			continue
		}
		if len(g.Scenarios) > 0 && !slices.Contains(g.Scenarios, scenario) {
			continue
		}
		if len(filter) > 0 && !slices.ContainsFunc(filter, g.covers) {
			continue
		}
		active = append(active, g)
	}
	return active
}
