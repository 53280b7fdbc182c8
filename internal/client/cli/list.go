package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// SortMethod is the order of the top-level counters in list
type SortMethod string

const (
	SortCreated SortMethod = "created"
	SortName    SortMethod = "name"
	SortCount   SortMethod = "count"
	SortTime    SortMethod = "time"
	SortID      SortMethod = "id"
)

// SortMethods lists the accepted values of --sort
var SortMethods = []SortMethod{SortCreated, SortName, SortCount, SortTime, SortID}

// ParseSortMethod accepts a sort method name in any case
func ParseSortMethod(s string) (SortMethod, error) {
	m := SortMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return SortCreated, nil
	}
	if !slices.Contains(SortMethods, m) {
		return "", fmt.Errorf("unknown sort method %q, expected one of %v", s, SortMethods)
	}
	return m, nil
}

// listOptions are the flags of the list command
type listOptions struct {
	All     bool
	Sort    SortMethod
	Reverse bool
	Search  string
}

// runList prints the tree. Archived nodes are hidden unless opts.All is set.
// With rootArg only that subtree is printed.
func (c *Cli) runList(ctx context.Context, rootArg string, opts listOptions) error {
	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}

	view := s
	if !opts.All {
		if view, err = s.Active(); err != nil {
			return fmt.Errorf("failed to filter archived countables: %w", err)
		}
	}

	pattern := strings.ToLower(strings.TrimSpace(opts.Search))
	if pattern != "" {
		if view, err = view.Filter(matchSearch(view, pattern)); err != nil {
			return fmt.Errorf("failed to search countables: %w", err)
		}
	}

	var roots []models.CountableID
	if rootArg != "" {
		id, err := resolveID(s, rootArg)
		if err != nil {
			return err
		}
		if !view.Contains(id) {
			if pattern != "" {
				c.io.Printf("No countables match %q.\n", opts.Search)
				return nil
			}
			c.io.Println("Countable is archived, use --all to show it.")
			return nil
		}
		roots = []models.CountableID{id}
	} else if roots, err = view.RootNodes(); err != nil {
		return fmt.Errorf("failed to list counters: %w", err)
	}

	if len(roots) == 0 {
		if pattern != "" {
			c.io.Printf("No countables match %q.\n", opts.Search)
			return nil
		}
		c.io.Println("No counters found.")
		c.io.Println()
		c.io.Println("Use 'tally new counter <name>' to start your first hunt.")
		return nil
	}

	sortRoots(view, roots, opts.Sort, opts.Reverse)
	if pattern != "" {
		rankBySearch(view, roots, pattern)
	}
	c.renderTree(view, roots)
	return nil
}

// matchSearch keeps nodes whose name or one of whose ancestors' names contains pattern.
// Filter then adds the ancestors of kept nodes.
func matchSearch(s *countable.Store, pattern string) func(models.Countable) bool {
	u := s.Level().Unchecked()
	return func(n models.Countable) bool {
		if strings.Contains(strings.ToLower(n.Name()), pattern) {
			return true
		}
		for _, parent := range u.AllParents(n.ID()) {
			if strings.Contains(strings.ToLower(u.Name(parent)), pattern) {
				return true
			}
		}
		return false
	}
}

// sortRoots orders ids by method, ties broken by creation time and then id.
func sortRoots(s *countable.Store, ids []models.CountableID, method SortMethod, reverse bool) {
	u := s.Recursive().Unchecked()

	var by func(a, b models.CountableID) int
	switch method {
	case SortName:
		by = func(a, b models.CountableID) int {
			return strings.Compare(strings.ToLower(u.Name(a)), strings.ToLower(u.Name(b)))
		}
	case SortCount:
		by = func(a, b models.CountableID) int { return cmp.Compare(u.Count(a), u.Count(b)) }
	case SortTime:
		by = func(a, b models.CountableID) int { return cmp.Compare(u.Time(a), u.Time(b)) }
	case SortID:
		by = func(a, b models.CountableID) int { return a.Compare(b) }
	default:
		by = func(a, b models.CountableID) int { return 0 }
	}

	slices.SortStableFunc(ids, func(a, b models.CountableID) int {
		c := by(a, b)
		if c == 0 {
			c = u.CreatedAt(a).Compare(u.CreatedAt(b))
		}
		if c == 0 {
			c = a.Compare(b)
		}
		if reverse {
			return -c
		}
		return c
	})
}

// searchRank: 0 name starts with pattern, 1 a descendant starts with it,
// 2 name contains it, 3 a descendant contains it
func searchRank(s *countable.Store, id models.CountableID, pattern string) int {
	u := s.Recursive().Unchecked()
	name := strings.ToLower(u.Name(id))

	childPrefix := slices.ContainsFunc(u.Children(id), func(child models.CountableID) bool {
		return strings.HasPrefix(strings.ToLower(u.Name(child)), pattern)
	})

	switch {
	case strings.HasPrefix(name, pattern):
		return 0
	case childPrefix:
		return 1
	case strings.Contains(name, pattern):
		return 2
	default:
		return 3
	}
}

// rankBySearch moves the best matches first and keeps the sort order inside a rank
func rankBySearch(s *countable.Store, ids []models.CountableID, pattern string) {
	ranks := make(map[models.CountableID]int, len(ids))
	for _, id := range ids {
		ranks[id] = searchRank(s, id, pattern)
	}
	slices.SortStableFunc(ids, func(a, b models.CountableID) int {
		return cmp.Compare(ranks[a], ranks[b])
	})
}
