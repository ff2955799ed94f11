package liars

import (
	"fmt"
	rand "math/rand/v2"
)

// NumDigits is the fixed width of every secret number. Numbers are always
// treated as zero-padded to this width, so 42 contributes six 0s, one 4 and
// one 2 to the digit counts.
const NumDigits = 8

// numberSpace is the size of the secret number range [0, 10^NumDigits).
const numberSpace = 100_000_000

// maxGenerateAttempts bounds collision retries in GenerateUniqueNumbers.
// Collisions are vanishingly rare for realistic player counts, so hitting
// the bound indicates a broken RNG rather than bad luck.
const maxGenerateAttempts = 100

// SecretNumber is a player's private fixed-width number for one round.
type SecretNumber int

// String returns the zero-padded representation used for digit counting.
func (n SecretNumber) String() string {
	return fmt.Sprintf("%0*d", NumDigits, int(n))
}

// Counts is a histogram of decimal digit occurrences: Counts[d] is the
// number of times digit d appears.
type Counts [10]int

// Total returns the sum of all entries. For a single number this is always
// NumDigits; for a round total it is NumDigits times the player count.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// DigitCounts returns the digit histogram of a single zero-padded number.
func DigitCounts(number SecretNumber) Counts {
	var counts Counts
	n := int(number)
	for i := 0; i < NumDigits; i++ {
		counts[n%10]++
		n /= 10
	}
	return counts
}

// TotalDigitCounts returns the elementwise sum of the digit histograms of
// all numbers. This is the ground truth used to adjudicate claims.
func TotalDigitCounts(numbers []SecretNumber) Counts {
	var total Counts
	for _, number := range numbers {
		counts := DigitCounts(number)
		for d := range total {
			total[d] += counts[d]
		}
	}
	return total
}

// GenerateUniqueNumbers draws n distinct secret numbers from
// [0, 10^NumDigits) using the supplied RNG. It retries on collisions up to a
// fixed per-number budget and returns ErrInsufficientUniqueNumbers if the
// budget is exhausted or n exceeds the size of the number space.
func GenerateUniqueNumbers(rng *rand.Rand, n int) ([]SecretNumber, error) {
	if n < 0 || n > numberSpace {
		return nil, fmt.Errorf("%w: requested %d from a space of %d", ErrInsufficientUniqueNumbers, n, numberSpace)
	}

	numbers := make([]SecretNumber, 0, n)
	seen := make(map[SecretNumber]bool, n)
	attempts := 0
	for len(numbers) < n {
		if attempts >= n+maxGenerateAttempts {
			return nil, fmt.Errorf("%w: %d unique after %d draws", ErrInsufficientUniqueNumbers, len(numbers), attempts)
		}
		attempts++

		number := SecretNumber(rng.IntN(numberSpace))
		if seen[number] {
			continue
		}
		seen[number] = true
		numbers = append(numbers, number)
	}
	return numbers, nil
}
