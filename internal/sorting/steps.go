package sorting

import "fmt"

type stepResult struct {
	explanation string
	touched     []int
	swapped     bool
}

// bubbleStep runs one full compare/swap pass over [0, n-2-k]
func bubbleStep(arr []int, k int) stepResult {
	var touched []int
	swapped := false

	for i := 0; i < len(arr)-1-k; i++ {
		if arr[i] > arr[i+1] {
			arr[i], arr[i+1] = arr[i+1], arr[i]
			touched = append(touched, i, i+1)
			swapped = true
		}
	}

	if !swapped {
		return stepResult{explanation: completionMessage(Bubble)}
	}
	return stepResult{
		explanation: "Bubble Sort: Comparing and swapping adjacent elements.",
		touched:     dedupe(touched),
		swapped:     true,
	}
}

// selectionStep swaps the minimum of [k, n-1] into position k
func selectionStep(arr []int, k int) stepResult {
	minIdx := k
	for i := k + 1; i < len(arr); i++ {
		if arr[i] < arr[minIdx] {
			minIdx = i
		}
	}

	if minIdx == k {
		return stepResult{
			explanation: "Selection Sort: No swap needed, moving to next element.",
			touched:     []int{k},
		}
	}

	from, to := arr[k], arr[minIdx]
	arr[k], arr[minIdx] = arr[minIdx], arr[k]
	return stepResult{
		explanation: fmt.Sprintf("Selection Sort: Swapping %d with %d.", from, to),
		touched:     []int{k, minIdx},
		swapped:     true,
	}
}

// insertionStep inserts element k+1 into the sorted prefix [0, k]
func insertionStep(arr []int, k int) stepResult {
	pos := k + 1
	key := arr[pos]
	j := pos - 1
	for j >= 0 && arr[j] > key {
		arr[j+1] = arr[j]
		j--
	}
	arr[j+1] = key

	touched := make([]int, 0, pos-j)
	for i := j + 1; i <= pos; i++ {
		touched = append(touched, i)
	}

	return stepResult{
		explanation: fmt.Sprintf("Insertion Sort: Inserting %d into the sorted portion.", key),
		touched:     touched,
		swapped:     j+1 != pos,
	}
}

func dedupe(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := indices[:0]
	for _, i := range indices {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}
