package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/internal/validation"
)

// tallyWriter is the part of a depth accessor used by count and time
type tallyWriter interface {
	Count(id models.CountableID) (int32, error)
	Time(id models.CountableID) (time.Duration, error)
	SetCount(id models.CountableID, count int32) error
	AddCount(id models.CountableID, delta int32) error
	SetTime(id models.CountableID, elapsed time.Duration) error
	AddTime(id models.CountableID, delta time.Duration) error
}

// depth выбирает глубину: level меняет только прямые фазы счетчика
func depth(s *countable.Store, level bool) tallyWriter {
	if level {
		return s.Level()
	}
	return s.Recursive()
}

// countOptions are the flags of the count command
type countOptions struct {
	Set    int64
	HasSet bool
	Level  bool
}

// runCount adds delta encounters to id, or sets its total when opts.HasSet.
// On a counter the change is spread over its phases, newest first.
func (c *Cli) runCount(ctx context.Context, arg string, delta int32, opts countOptions) error {
	if opts.HasSet {
		if err := validation.ValidateCount(opts.Set); err != nil {
			return fmt.Errorf("invalid count: %w", err)
		}
	}

	var id models.CountableID
	var total int32
	_, err := c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}

		w := depth(s, opts.Level)
		if opts.HasSet {
			err = w.SetCount(id, int32(opts.Set))
		} else {
			var current int32
			if current, err = w.Count(id); err != nil {
				return err
			}
			// уход ниже нуля обрезается движком, проверяем только верхнюю границу
			if err := validation.ValidateCount(max(int64(current)+int64(delta), 0)); err != nil {
				return fmt.Errorf("invalid count: %w", err)
			}
			err = w.AddCount(id, delta)
		}
		if err != nil {
			return fmt.Errorf("failed to update count: %w", err)
		}

		total, err = s.Recursive().Count(id)
		return err
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ %s: %d\n", shortID(id), total)
	return nil
}

// timeOptions are the flags of the time command
type timeOptions struct {
	Set   bool
	Level bool
}

// runTime adds the elapsed time to id, or sets it when opts.Set
func (c *Cli) runTime(ctx context.Context, arg, value string, opts timeOptions) error {
	d, err := parseElapsed(value)
	if err != nil {
		return err
	}
	if opts.Set {
		if err := validation.ValidateElapsed(d); err != nil {
			return fmt.Errorf("invalid time: %w", err)
		}
	}

	var id models.CountableID
	var total time.Duration
	_, err = c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}

		w := depth(s, opts.Level)
		if opts.Set {
			err = w.SetTime(id, d)
		} else {
			err = w.AddTime(id, d)
		}
		if err != nil {
			return fmt.Errorf("failed to update time: %w", err)
		}

		total, err = s.Recursive().Time(id)
		return err
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ %s: %s\n", shortID(id), formatDuration(total))
	return nil
}

// parseElapsed принимает 1h30m или h:mm:ss
func parseElapsed(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	negative := strings.HasPrefix(value, "-")
	parts := strings.Split(strings.TrimPrefix(value, "-"), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q, use 1h30m or h:mm:ss", value)
	}

	var d time.Duration
	units := []time.Duration{time.Second, time.Minute, time.Hour}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q, use 1h30m or h:mm:ss", value)
		}
		d += time.Duration(n) * units[len(parts)-1-i]
	}

	if negative {
		d = -d
	}
	return d, nil
}
