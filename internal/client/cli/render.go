package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

const (
	minBarWidth = 10
	maxBarWidth = 30
)

// formatDuration печатает время охоты как h:mm:ss
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// progressBar renders p in [0, 1] as a bar of width cells followed by a percentage
func progressBar(p float64, width int) string {
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	p = min(p, 1)

	filled := int(math.Round(p * float64(width)))
	filled = min(max(filled, 0), width)

	return fmt.Sprintf("%s%s %5.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		p*100)
}

// barWidth подбирает ширину полосы прогресса под терминал
func (c *Cli) barWidth() int {
	return min(max(c.io.Width()/4, minBarWidth), maxBarWidth)
}

func idLabel(id models.CountableID) string {
	return color.New(color.FgCyan).Sprintf("[%s]", shortID(id))
}

func nameLabel(u countable.Unchecked[countable.Recursive], id models.CountableID) string {
	name := u.Name(id)
	if u.Kind(id) == models.KindCounter {
		name = color.New(color.Bold).Sprint(name)
	}
	if u.Kind(id) == models.KindPhase && u.IsSuccess(id) {
		name += color.New(color.FgHiGreen).Sprint(" ✓")
	}
	if u.IsArchived(id) {
		name += color.New(color.FgHiBlack).Sprint(" [archived]")
	}
	return name
}

// describe returns the one-line summary of a node used by list
func (c *Cli) describe(u countable.Unchecked[countable.Recursive], id models.CountableID, width int) string {
	return fmt.Sprintf("%s %s  %d  %s  %s",
		idLabel(id),
		nameLabel(u, id),
		u.Count(id),
		formatDuration(u.Time(id)),
		progressBar(u.Progress(id), width))
}

// renderTree prints every root with its subtree
//
//	[1a2b3c4d] Counter  10  0:05:00  ██░░░░  3.2%
//	├── [5e6f7a8b] Phase 1 ✓  ...
//	└── [9c0d1e2f] Phase 2  ...
func (c *Cli) renderTree(s *countable.Store, roots []models.CountableID) {
	u := s.Recursive().Unchecked()
	width := c.barWidth()
	for _, root := range roots {
		c.renderNode(u, root, "", "", width)
	}
}

func (c *Cli) renderNode(u countable.Unchecked[countable.Recursive], id models.CountableID, prefix, childPrefix string, width int) {
	c.io.Println(prefix + c.describe(u, id, width))

	children := u.Level().Children(id)
	for i, child := range children {
		p, cp := childPrefix+"├── ", childPrefix+"│   "
		if i == len(children)-1 {
			p, cp = childPrefix+"└── ", childPrefix+"    "
		}
		c.renderNode(u, child, p, cp, width)
	}
}
