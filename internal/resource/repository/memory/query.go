package memory

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"time"

	"resource-api/internal/resource"
)

// matches applies filters as AND equality, comparing printed values so a
// query-string "2001" equals an int column holding 2001.
func (r *implRepository[E, P]) matches(ctx context.Context, e *E, filters resource.Filters) (bool, error) {
	rv := structValue(e)
	for column, want := range filters {
		f, err := r.field(column)
		if err != nil {
			return false, err
		}
		got, _ := f.ValueOf(ctx, rv)
		if fmt.Sprint(got) != fmt.Sprint(deref(want)) {
			return false, nil
		}
	}
	return true, nil
}

func (r *implRepository[E, P]) sort(ctx context.Context, items []E, sf resource.SortField) error {
	f, err := r.field(sf.Column)
	if err != nil {
		return err
	}
	idField, err := r.field(resource.ColumnID)
	if err != nil {
		return err
	}

	slices.SortStableFunc(items, func(a, b E) int {
		av, _ := f.ValueOf(ctx, structValue(&a))
		bv, _ := f.ValueOf(ctx, structValue(&b))
		c := compareValues(av, bv)
		if sf.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		aid, _ := idField.ValueOf(ctx, structValue(&a))
		bid, _ := idField.ValueOf(ctx, structValue(&b))
		return compareValues(aid, bid)
	})
	return nil
}

func compareValues(a, b any) int {
	a, b = deref(a), deref(b)
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}

	ar, br := reflect.ValueOf(a), reflect.ValueOf(b)
	if ar.IsValid() && br.IsValid() {
		switch {
		case ar.CanInt() && br.CanInt():
			return cmp.Compare(ar.Int(), br.Int())
		case ar.CanUint() && br.CanUint():
			return cmp.Compare(ar.Uint(), br.Uint())
		case ar.CanFloat() && br.CanFloat():
			return cmp.Compare(ar.Float(), br.Float())
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
