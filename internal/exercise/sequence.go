package exercise

import "fmt"

// ValidationError rejects an item list as a whole. A session is never
// created from a list that fails validation — there is no partial session.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid exercise: " + e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// slotOrder derives the authoritative reveal order: slot ids in item
// order. Generator-assigned ids may be arbitrary, so they are never
// sorted by value.
func slotOrder(items []Item) []string {
	var order []string
	for _, it := range items {
		if it.Slot != nil {
			order = append(order, it.Slot.ID)
		}
	}
	return order
}

// validateItems checks the whole item list against the requested size and
// the engine: the slot count must equal size exactly, every slot must be
// well-formed with a unique id, and every slot's conjugation must resolve
// before it is ever presented as gradable.
func validateItems(engine Conjugator, items []Item, size int) error {
	if size < 1 {
		// A session with nothing to answer would be complete at birth
		// and never pass through Ready.
		return validationErrorf("exercise needs at least one blank, requested %d", size)
	}

	seen := make(map[string]bool)
	count := 0

	for i, it := range items {
		switch it.Type {
		case ItemDialogueLine, ItemSentence:
		case ItemFiller:
			if it.Slot != nil {
				return validationErrorf("item %d: filler items cannot carry a slot", i)
			}
		default:
			return validationErrorf("item %d: unknown item type %q", i, it.Type)
		}

		if it.Slot == nil {
			continue
		}
		count++

		s := it.Slot
		if s.ID == "" {
			return validationErrorf("item %d: slot has empty id", i)
		}
		if seen[s.ID] {
			return validationErrorf("item %d: duplicate slot id %q", i, s.ID)
		}
		seen[s.ID] = true

		if s.Lemma == "" {
			return validationErrorf("slot %q: empty lemma", s.ID)
		}
		if _, err := engine.Conjugate(s.Lemma, s.Tense, s.Person); err != nil {
			return validationErrorf("slot %q: %v", s.ID, err)
		}
	}

	if count != size {
		return validationErrorf("expected %d blanks, generator produced %d", size, count)
	}
	return nil
}

// computeVisibility applies the progressive disclosure rule. With k the
// order-index of the first unrevealed slot (len(order) when all are
// revealed), a slot-bearing item is visible while its 1-based slot
// position is at most k+1, and a non-slot item while the slots seen so
// far number at most k. Answered blanks stay visible, the current blank
// is shown, everything beyond is hidden.
func computeVisibility(items []Item, order []string, revealed map[string]bool) []bool {
	k := len(order)
	for i, id := range order {
		if !revealed[id] {
			k = i
			break
		}
	}

	visible := make([]bool, len(items))
	slotsSeen := 0
	for i, it := range items {
		if it.Slot != nil {
			slotsSeen++
			visible[i] = slotsSeen <= k+1
		} else {
			visible[i] = slotsSeen <= k
		}
	}
	return visible
}
