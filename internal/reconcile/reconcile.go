// Package reconcile merges bibliographic facts from untrusted,
// partially-overlapping sources into one authoritative record.
package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kimlab/readpaper/internal/record"
)

// MergeField merges one incoming value into the record's field and returns
// the resolved value. The transitions run in strict order:
//
//  1. type normalization (year → int, doi scheme/case normalization),
//  2. equality short-circuit,
//  3. missing-old acceptance,
//  4. missing-new rejection,
//  5. conflict: the confirmer decides; a nil confirmer keeps the old value.
//
// The keywords field bypasses all of this: a []string new value replaces
// the prior collection outright, last writer wins. That asymmetry is
// deliberate policy, not an oversight.
//
// A value that cannot be normalized (e.g. a non-numeric year) fails this
// field's merge and leaves the previous value intact.
func MergeField(rec *record.Record, f record.Field, newValue any, confirm Confirmer) (any, error) {
	if f == record.FieldKeywords {
		return mergeKeywords(rec, newValue)
	}

	// 1. Normalize the incoming value to the field's canonical type.
	norm, err := normalize(f, newValue)
	if err != nil {
		return rec.Get(f), fmt.Errorf("field %s: %w", f, err)
	}

	old := rec.Get(f)

	// 2. Same value: idempotent no-op, no confirmation.
	if equal(f, old, norm) {
		return old, nil
	}

	// 3. Nothing to overwrite: accept unconditionally.
	if rec.IsZero(f) {
		if err := rec.Set(f, norm); err != nil {
			return old, err
		}
		return norm, nil
	}

	// 4. Nothing incoming: keep what we have.
	if isEmpty(norm) {
		return old, nil
	}

	// 5. Both present and different: ask.
	if confirm == nil {
		confirm = KeepOld
	}
	if confirm.Confirm(f, old, norm) {
		if err := rec.Set(f, norm); err != nil {
			return old, err
		}
		return norm, nil
	}
	return old, nil
}

// ReconcileAll merges every populated field of src into rec, in the
// vocabulary's natural order. Field merges are independent; an error on
// one field is reported but does not roll back the others.
func ReconcileAll(rec *record.Record, src *record.Record, confirm Confirmer) error {
	var firstErr error
	for _, f := range record.Fields {
		if src.IsZero(f) {
			continue
		}
		if _, err := MergeField(rec, f, src.Get(f), confirm); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// mergeKeywords implements the keywords set semantics: any list-typed new
// value replaces the collection, no merge, no confirmation.
func mergeKeywords(rec *record.Record, newValue any) (any, error) {
	switch v := newValue.(type) {
	case []string:
		if err := rec.Set(record.FieldKeywords, v); err != nil {
			return rec.Keywords, err
		}
		return rec.Keywords, nil
	case nil:
		return rec.Keywords, nil
	default:
		return rec.Keywords, fmt.Errorf("field keywords: expected []string, got %T", newValue)
	}
}

// normalize coerces an incoming value to the field's canonical type.
func normalize(f record.Field, v any) (any, error) {
	if f == record.FieldYear {
		return toYear(v)
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case nil:
		return "", nil
	default:
		return nil, fmt.Errorf("expected string, got %T", v)
	}
}

// toYear coerces year values to a non-negative integer, truncating any
// fractional suffix.
func toYear(v any) (int, error) {
	switch y := v.(type) {
	case int:
		if y < 0 {
			return 0, fmt.Errorf("negative year %d", y)
		}
		return y, nil
	case float64:
		if y < 0 {
			return 0, fmt.Errorf("negative year %v", y)
		}
		return int(y), nil
	case string:
		s := strings.TrimSpace(y)
		if s == "" {
			return 0, nil
		}
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil || fl < 0 {
			return 0, fmt.Errorf("malformed year %q", y)
		}
		return int(fl), nil
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("expected year, got %T", v)
}

// equal compares old and normalized new value. DOI values compare equal
// across bare and prefixed forms and case.
func equal(f record.Field, old, next any) bool {
	if f == record.FieldDOI {
		a, _ := old.(string)
		b, _ := next.(string)
		return record.NormalizeDOI(a) == record.NormalizeDOI(b)
	}
	return old == next
}

// isEmpty reports the empty/sentinel value for a normalized value.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case int:
		return x == 0
	}
	return v == nil
}
