package sorted

// IterateOver walks one or more sorted slices in ascending order, calling
// callback with each item and the index of the source slice it came from.
// Equal items from different sources are delivered in the order their
// source slices were passed in.
func IterateOver[T any](less Less[T], callback func(item T, srcIndex int), sources ...[]T) {
	active := make([][]T, 0, len(sources))
	srcIndex := make([]int, 0, len(sources))
	for i, src := range sources {
		if len(src) > 0 {
			active = append(active, src)
			srcIndex = append(srcIndex, i)
		}
	}
	if len(active) == 0 {
		return
	}

	cursor := make([]int, len(active))
	for {
		winner := 0
		head := active[0][cursor[0]]
		for i := 1; i < len(active); i++ {
			v := active[i][cursor[i]]
			if less(v, head) {
				winner, head = i, v
			}
		}

		callback(head, srcIndex[winner])
		cursor[winner]++

		if cursor[winner] == len(active[winner]) {
			active = append(active[:winner], active[winner+1:]...)
			cursor = append(cursor[:winner], cursor[winner+1:]...)
			srcIndex = append(srcIndex[:winner], srcIndex[winner+1:]...)

			if len(active) == 0 {
				return
			}
			if len(active) == 1 {
				rest, from := active[0], srcIndex[0]
				for i := cursor[0]; i < len(rest); i++ {
					callback(rest[i], from)
				}
				return
			}
		}
	}
}

// Merge k-way merges sorted slices into one new sorted slice (a "Union"
// that keeps duplicates, matching the multiset semantics a merge step in
// the sort itself would produce).
func Merge[T any](less Less[T], sources ...[]T) []T {
	length := 0
	for _, s := range sources {
		length += len(s)
	}
	result := make([]T, 0, length)
	IterateOver(less, func(item T, _ int) {
		result = append(result, item)
	}, sources...)
	return result
}

// Union merges sorted slices, dropping duplicate values so each distinct
// value appears once in the result.
func Union[T any](less Less[T], sources ...[]T) []T {
	var result []T
	first := true
	var prev T
	IterateOver(less, func(item T, _ int) {
		if first || !equal(less, prev, item) {
			result = append(result, item)
			prev = item
			first = false
		}
	}, sources...)
	return result
}

// Difference returns the elements of sorted1 that are not present in
// sorted2.
func Difference[T any](sorted1, sorted2 []T, less Less[T]) []T {
	var result []T
	var i, j int
	for i < len(sorted1) && j < len(sorted2) {
		switch {
		case less(sorted1[i], sorted2[j]):
			result = append(result, sorted1[i])
			i++
		case less(sorted2[j], sorted1[i]):
			j++
		default:
			i++
		}
	}
	result = append(result, sorted1[i:]...)
	return result
}

// Intersection returns the values common to every sorted slice given,
// once each.
func Intersection[T any](less Less[T], sources ...[]T) []T {
	if len(sources) == 0 {
		return nil
	}
	for _, s := range sources {
		if len(s) == 0 {
			return nil
		}
	}

	shortest := 0
	for i, s := range sources {
		if len(s) < len(sources[shortest]) {
			shortest = i
		}
	}

	cursors := make([]int, len(sources))
	var result []T

	for _, value := range sources[shortest] {
		if len(result) > 0 && equal(less, result[len(result)-1], value) {
			continue
		}
		found := true
		for i, s := range sources {
			if i == shortest {
				continue
			}
			c := cursors[i]
			for c < len(s) && less(s[c], value) {
				c++
			}
			cursors[i] = c
			if c >= len(s) || !equal(less, s[c], value) {
				found = false
				break
			}
		}
		if found {
			result = append(result, value)
		}
	}
	return result
}
