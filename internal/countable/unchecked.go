package countable

import (
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// Defaults on ErrNotFound / ErrRequiresChild: zero values, HuntTypeMixed for
// HuntType, and the id itself for the recursive Parent and LastChild.

func (u Unchecked[D]) Kind(id models.CountableID) models.Kind {
	return must(u.checked.Kind(id))
}

func (u Unchecked[D]) Name(id models.CountableID) string {
	return must(u.checked.Name(id))
}

func (u Unchecked[D]) CreatedAt(id models.CountableID) time.Time {
	return must(u.checked.CreatedAt(id))
}

func (u Unchecked[D]) LastEdit(id models.CountableID) time.Time {
	return must(u.checked.LastEdit(id))
}

func (u Unchecked[D]) IsArchived(id models.CountableID) bool {
	return must(u.checked.IsArchived(id))
}

func (u Unchecked[D]) IsSuccess(id models.CountableID) bool {
	return must(u.checked.IsSuccess(id))
}

func (u Unchecked[D]) Children(id models.CountableID) []models.CountableID {
	return must(u.checked.Children(id))
}

func (u Unchecked[D]) HasChild(id, child models.CountableID) bool {
	return must(u.checked.HasChild(id, child))
}

// LastChild returns the last child of id and whether it has one.
func (u Unchecked[D]) LastChild(id models.CountableID) (models.CountableID, bool) {
	child, ok, err := u.checked.LastChild(id)
	if err != nil {
		mustDo(err)
		if u.checked.deep() {
			return id, true
		}
		return models.NilCountableID, false
	}
	return child, ok
}

// Parent returns the parent of id and whether it has one.
func (u Unchecked[D]) Parent(id models.CountableID) (models.CountableID, bool) {
	parent, ok, err := u.checked.Parent(id)
	if err != nil {
		mustDo(err)
		if u.checked.deep() {
			return id, true
		}
		return models.NilCountableID, false
	}
	return parent, ok
}

func (u Unchecked[D]) AllParents(id models.CountableID) []models.CountableID {
	return must(u.checked.AllParents(id))
}

func (u Unchecked[D]) Count(id models.CountableID) int32 {
	return must(u.checked.Count(id))
}

func (u Unchecked[D]) Time(id models.CountableID) time.Duration {
	return must(u.checked.Time(id))
}

func (u Unchecked[D]) Rolls(id models.CountableID) int {
	return must(u.checked.Rolls(id))
}

func (u Unchecked[D]) Completed(id models.CountableID) int {
	return must(u.checked.Completed(id))
}

// HuntType returns HuntTypeMixed for missing nodes and counters without phases.
func (u Unchecked[D]) HuntType(id models.CountableID) models.HuntType {
	ht, err := u.checked.HuntType(id)
	if err != nil {
		mustDo(err)
		return models.HuntTypeMixed
	}
	return ht
}

func (u Unchecked[D]) HasCharm(id models.CountableID) bool {
	return must(u.checked.HasCharm(id))
}

func (u Unchecked[D]) Odds(id models.CountableID) float64 {
	return must(u.checked.Odds(id))
}

func (u Unchecked[D]) Progress(id models.CountableID) float64 {
	return must(u.checked.Progress(id))
}

func (u Unchecked[D]) SetCount(id models.CountableID, count int32) {
	mustDo(u.checked.SetCount(id, count))
}

func (u Unchecked[D]) AddCount(id models.CountableID, delta int32) {
	mustDo(u.checked.AddCount(id, delta))
}

func (u Unchecked[D]) SetTime(id models.CountableID, elapsed time.Duration) {
	mustDo(u.checked.SetTime(id, elapsed))
}

func (u Unchecked[D]) AddTime(id models.CountableID, delta time.Duration) {
	mustDo(u.checked.AddTime(id, delta))
}

func (u Unchecked[D]) SetName(id models.CountableID, name string) {
	mustDo(u.checked.SetName(id, name))
}

// SetHuntType panics on Mixed and unknown hunt types.
func (u Unchecked[D]) SetHuntType(id models.CountableID, ht models.HuntType) {
	mustDo(u.checked.SetHuntType(id, ht))
}

func (u Unchecked[D]) SetCharm(id models.CountableID, hasCharm bool) {
	mustDo(u.checked.SetCharm(id, hasCharm))
}

func (u Unchecked[D]) ToggleSuccess(id models.CountableID) {
	mustDo(u.checked.ToggleSuccess(id))
}

func (u Unchecked[D]) Archive(id models.CountableID) {
	mustDo(u.checked.Archive(id))
}
