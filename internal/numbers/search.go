package numbers

// NotFound is returned by BinarySearch when the target is absent
const NotFound = -1

// BinarySearch returns the index of target in values, which must be sorted ascending,
// or NotFound. With duplicates, the first match on the bisection path wins.
func BinarySearch(values []int, target int) int {
	low := 0
	high := len(values) - 1

	for low <= high {
		// Ties round toward the lower index
		mid := (low + high) / 2

		switch value := values[mid]; {
		case value < target:
			low = mid + 1
		case value > target:
			high = mid - 1
		default:
			return mid
		}
	}

	return NotFound
}
