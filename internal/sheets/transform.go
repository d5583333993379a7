package sheets

import "pifrelay/internal/fetcher"

// remapRow produces the relay row shape from an upstream row:
//
//	in:  [unknown, symbol, name, rating, ...]
//	out: [unknown, name, symbol, rating, rating]
//
// Output indexes 3 and 4 read the same upstream cell. The downstream
// client depends on the duplicated column, so it is preserved as-is.
func remapRow(in fetcher.Row) fetcher.Row {
	return fetcher.Row{
		cellOrEmpty(in, 0),
		cellOrEmpty(in, 2),
		cellOrEmpty(in, 1),
		cellOrEmpty(in, 3),
		cellOrEmpty(in, 3),
	}
}

// cellOrEmpty returns the cell at index i, substituting an empty string
// for missing or falsy cells (nil, false, "", numeric zero).
func cellOrEmpty(r fetcher.Row, i int) any {
	if i >= len(r) {
		return ""
	}

	switch v := r[i].(type) {
	case nil:
		return ""
	case bool:
		if !v {
			return ""
		}
	case string:
		if v == "" {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}

	return r[i]
}
