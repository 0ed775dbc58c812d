// Package dice wraps the shared random source used by every generation step.
package dice

import (
	"math/rand"
	"regexp"
	"strconv"
	"time"
)

// Roller is the single random source threaded through a generation run.
// It is not safe for concurrent use.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller backed by the given source
func NewRoller(rng *rand.Rand) *Roller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Roller{rng: rng}
}

// NewSeededRoller creates a roller with a deterministic seed
func NewSeededRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (r *Roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Range returns a uniform value in [min, max] inclusive
func (r *Roller) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// D100 rolls a 100-sided die (1-100), used for percentage checks
func (r *Roller) D100() int {
	return r.rng.Intn(100) + 1
}

// Chance returns true with the given percent probability (0-100)
func (r *Roller) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.D100() <= percent
}

// Bool flips a coin
func (r *Roller) Bool() bool {
	return r.rng.Intn(2) == 0
}

// Roll rolls n dice with the specified number of sides and returns the total
func (r *Roller) Roll(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.rng.Intn(sides) + 1
	}
	return total
}

// diceNotationRegex matches dice notation like "1d6", "2d4+1", "1d8-2"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseDice parses dice notation and returns the roll result
// Supports formats: "1d6", "2d4", "1d8+2", "2d6-1"
// Returns 0 if the notation is invalid
func (r *Roller) ParseDice(notation string) int {
	if notation == "" {
		return 0
	}

	matches := diceNotationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return 0
	}

	count, _ := strconv.Atoi(matches[1])
	sides, _ := strconv.Atoi(matches[2])
	if sides < 1 {
		return 0
	}

	bonus := 0
	if matches[3] != "" {
		bonus, _ = strconv.Atoi(matches[3])
	}

	return r.Roll(count, sides) + bonus
}

// Pick returns a uniformly chosen element. The slice must not be empty.
func Pick[T any](r *Roller, options []T) T {
	return options[r.Intn(len(options))]
}

// Weighted pairs a value with its relative weight
type Weighted[T any] struct {
	Value  T
	Weight int
}

// PickWeighted chooses a value proportionally to its weight.
// Entries with a non-positive weight are never chosen. ok is false when
// no entry carries weight.
func PickWeighted[T any](r *Roller, options []Weighted[T]) (value T, ok bool) {
	total := 0
	for _, opt := range options {
		if opt.Weight > 0 {
			total += opt.Weight
		}
	}
	if total == 0 {
		return value, false
	}

	roll := r.Intn(total)
	for _, opt := range options {
		if opt.Weight <= 0 {
			continue
		}
		if roll < opt.Weight {
			return opt.Value, true
		}
		roll -= opt.Weight
	}
	return value, false
}
