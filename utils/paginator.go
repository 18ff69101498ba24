package utils

import "strconv"

// Page is one window over an ordered record sequence. Identical input and
// page number always yield the identical slice.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int
	PageSize int
}

// Paginate slices items into fixed-size pages and returns the requested one.
// Out-of-range page numbers clamp: below 1 coerces to the first page, beyond
// the end coerces to the last page. An empty input yields one empty page.
func Paginate[T any](items []T, pageSize, number int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	count := len(items)
	numPages := (count + pageSize - 1) / pageSize
	if numPages < 1 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return Page[T]{
		Items:    items[start:end],
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PageSize: pageSize,
	}
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// HasPrev reports whether a preceding page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// NextPage returns the next page number, clamped to the last page.
func (p Page[T]) NextPage() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.NumPages
}

// PrevPage returns the previous page number, clamped to the first page.
func (p Page[T]) PrevPage() int {
	if p.HasPrev() {
		return p.Number - 1
	}
	return 1
}

// ParsePageParam converts a ?page= query value. Missing or non-numeric
// values coerce to page 1; range clamping happens in Paginate.
func ParsePageParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
