package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// IntRows returns length rows of width values drawn from [0, limit).
func (r *RNG) IntRows(length, width, limit int) [][]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]int64, length)
	for i := range rows {
		row := make([]int64, width)
		for j := range row {
			row[j] = r.rand.Int63n(int64(limit))
		}
		rows[i] = row
	}
	return rows
}

// FloatRows returns length rows of width values drawn from [-scale, scale).
// Values are rounded to two decimals so that their text form is short.
func (r *RNG) FloatRows(length, width int, scale float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]float64, length)
	for i := range rows {
		row := make([]float64, width)
		for j := range row {
			v := (r.rand.Float64()*2 - 1) * scale
			row[j] = float64(int64(v*100)) / 100
		}
		rows[i] = row
	}
	return rows
}

// Names returns n distinct column names c0, c1, ...
func Names(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "c" + strconv.Itoa(i)
	}
	return names
}

// Number is the set of value types CSV can render.
type Number interface {
	~int64 | ~float64
}

// CSV renders a header line and one line per row, separated by delim.
func CSV[N Number](names []string, rows [][]N, delim rune) string {
	var sb strings.Builder
	sep := string(delim)

	sb.WriteString(strings.Join(names, sep))
	sb.WriteByte('\n')
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				sb.WriteString(sep)
			}
			switch x := any(v).(type) {
			case int64:
				sb.WriteString(strconv.FormatInt(x, 10))
			case float64:
				sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Transpose turns rows into columns. All rows must have the same width.
func Transpose[N Number](rows [][]N) [][]N {
	if len(rows) == 0 {
		return nil
	}
	cols := make([][]N, len(rows[0]))
	for j := range cols {
		cols[j] = make([]N, len(rows))
		for i, row := range rows {
			cols[j][i] = row[j]
		}
	}
	return cols
}
