package cli

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

type nodeDetails struct {
	Kind      string
	Name      string
	ID        string
	Parent    string
	Time      string
	HuntType  string
	Odds      string
	Progress  string
	CreatedAt string
	LastEdit  string
	Children  []string
	Rolls     int
	Completed int
	Count     int32
	HasCharm  bool
	Archived  bool
}

func (c *Cli) runShow(ctx context.Context, arg string) error {
	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}

	id, err := resolveID(s, arg)
	if err != nil {
		return err
	}

	tmpl, err := template.New("details").Parse(detailsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(c.io, buildDetails(s, id)); err != nil {
		return fmt.Errorf("failed to render details: %w", err)
	}

	return nil
}

// buildDetails collects every displayed value of id; missing values fall back to zero
func buildDetails(s *countable.Store, id models.CountableID) nodeDetails {
	u := s.Recursive().Unchecked()

	d := nodeDetails{
		Kind:      "Counter",
		Name:      u.Name(id),
		ID:        id.String(),
		Count:     u.Count(id),
		Time:      formatDuration(u.Time(id)),
		HuntType:  u.HuntType(id).Repr(),
		HasCharm:  u.HasCharm(id),
		Rolls:     u.Rolls(id),
		Odds:      formatOdds(u.Odds(id)),
		Progress:  fmt.Sprintf("%.1f%%", u.Progress(id)*100),
		Completed: u.Completed(id),
		Archived:  u.IsArchived(id),
		CreatedAt: u.CreatedAt(id).Local().Format(time.DateTime),
		LastEdit:  u.LastEdit(id).Local().Format(time.DateTime),
	}
	if u.Kind(id) == models.KindPhase {
		d.Kind = "Phase"
	}

	if parent, ok := u.Level().Parent(id); ok {
		d.Parent = fmt.Sprintf("%s (%s)", u.Name(parent), shortID(parent))
	}

	for _, child := range u.Level().Children(id) {
		d.Children = append(d.Children, fmt.Sprintf("%s %s", shortID(child), u.Name(child)))
	}

	return d
}

func formatOdds(odds float64) string {
	if odds <= 0 {
		return "-"
	}
	return fmt.Sprintf("1/%.0f", odds)
}
