package selection

import "testing"

func TestShuffleIsPermutation(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 50}

	for _, size := range sizes {
		input := make([]int, size)
		for i := range input {
			input[i] = i
		}

		out := Shuffled(input)

		if len(out) != size {
			t.Fatalf("size %d: expected length %d, got %d", size, size, len(out))
		}

		seen := make(map[int]int)
		for _, v := range out {
			seen[v]++
		}
		for i := 0; i < size; i++ {
			if seen[i] != 1 {
				t.Errorf("size %d: element %d appears %d times after shuffle", size, i, seen[i])
			}
		}
	}
}

func TestShuffledDoesNotMutateInput(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	original := make([]int, len(input))
	copy(original, input)

	Shuffled(input)

	for i := range input {
		if input[i] != original[i] {
			t.Fatalf("input mutated at index %d: expected %d, got %d", i, original[i], input[i])
		}
	}
}
