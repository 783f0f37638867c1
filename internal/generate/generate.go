// Package generate produces reproducible test data for the command line tool
package generate

import (
	"math/rand"

	"github.com/gostonefire/filestructs/array"
	"github.com/gostonefire/filestructs/list"
)

// Alphabet - Characters used in generated strings
const Alphabet = "abcdefghijklmnoprstuvxqwyz0123456789"

// KeyLength - Length of generated hash table keys
const KeyLength = 5

// Floats - Returns n values from the seed, each a fraction scaled by a random factor between 1 and 1000
func Floats(seed int64, n int) []float64 {
	r := rand.New(rand.NewSource(seed))

	values := make([]float64, n)
	for i := range values {
		values[i] = nextFloat(r)
	}

	return values
}

// Strings - Returns n strings of the given length drawn from Alphabet
func Strings(seed int64, n, length int) []string {
	r := rand.New(rand.NewSource(seed))

	values := make([]string, n)
	buf := make([]byte, length)
	for i := range values {
		for j := range buf {
			buf[j] = Alphabet[r.Intn(len(Alphabet))]
		}
		values[i] = string(buf)
	}

	return values
}

// FillArray - Sets every element of a to a generated value
func FillArray(a array.Array, seed int64) (err error) {
	r := rand.New(rand.NewSource(seed))

	for i := 0; i < a.Length(); i++ {
		if err = a.Set(i, nextFloat(r)); err != nil {
			return
		}
	}

	return
}

// FillList - Appends n generated values to l
func FillList(l list.List, seed int64, n int) (err error) {
	r := rand.New(rand.NewSource(seed))

	for i := 0; i < n; i++ {
		if err = l.Add(nextFloat(r)); err != nil {
			return
		}
	}

	return
}

func nextFloat(r *rand.Rand) float64 {
	return r.Float64() * float64(1+r.Intn(1000))
}
