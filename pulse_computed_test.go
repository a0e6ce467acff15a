package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func() int {
			log = append(log, "doubling")
			return count.Read() * 2
		})
		plustwo := NewComputed(func() int {
			log = append(log, "adding")
			return double.Read() + 2
		})

		assert.Equal(t, 1, count.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 4, plustwo.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
		assert.Equal(t, 20, double.Read())
		assert.Equal(t, 22, plustwo.Read())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("derivation runs at most once per invalidation", func(t *testing.T) {
		derivations := 0

		count := NewSignal(1)
		double := NewComputed(func() int {
			derivations++
			return count.Read() * 2
		})

		assert.Equal(t, 0, derivations) // lazy until first read

		double.Read()
		double.Read()
		assert.Equal(t, 1, derivations)

		count.Write(5)
		double.Read()
		double.Read()
		assert.Equal(t, 2, derivations)
	})

	t.Run("propagates even when the derived value is unchanged", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		a := NewComputed(func() int {
			log = append(log, "running a")
			return count.Read() * 0 // always returns 0
		})
		b := NewComputed(func() int {
			log = append(log, "running b")
			return a.Read() + 1
		})

		a.Read()
		b.Read()

		count.Write(10)

		assert.Equal(t, []string{
			"running a",
			"running b",
			"running a",
			"running b",
		}, log)
	})

	t.Run("diamond dependency is coherent", func(t *testing.T) {
		combines := 0

		s := NewSignal(1)
		left := NewComputed(func() int { return s.Read() + 1 })
		right := NewComputed(func() int { return s.Read() * 2 })
		combined := NewComputed(func() int {
			combines++
			return left.Read() + right.Read()
		})

		assert.Equal(t, 4, combined.Read())

		s.Write(3)
		assert.Equal(t, 10, combined.Read())
		assert.Equal(t, 2, combines) // one coherent recompute, not one per branch
	})

	t.Run("peek does not refresh", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputed(func() int {
			return count.Read() * 2
		})

		assert.Equal(t, 0, double.Peek()) // never derived yet
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 2, double.Peek())
	})
}
