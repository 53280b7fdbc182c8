package clock

import (
	"sync"
	"time"
)

// Clock выдает монотонно возрастающие временные метки для last_edit.
// Это гибрид логических часов Лампорта и настенного времени:
// метка никогда не меньше последней выданной или наблюдаемой метки,
// поэтому локальная правка после слияния всегда новее слитых данных.
type Clock struct {
	last time.Time        // последняя выданная или наблюдаемая метка
	now  func() time.Time // источник настенного времени
	mu   sync.Mutex
}

// New creates a clock backed by time.Now.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock backed by the given wall time source.
// Используется для тестирования.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the next timestamp in UTC, strictly after every earlier result of Now
// and not before anything passed to Observe.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	// UTC() также отбрасывает монотонную составляющую, метки переживают сериализацию без изменений
	t := c.now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Nanosecond)
	}
	c.last = t

	return t
}

// Observe advances the clock to a remote timestamp.
// Согласно алгоритму Лампорта: last = max(last, remote)
func (c *Clock) Observe(remote time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remote.After(c.last) {
		c.last = remote.UTC()
	}
}

// Last returns the latest timestamp issued or observed.
func (c *Clock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
