package particles

import (
	"math"
	"sort"
)

// gridThreshold is the population above which the connection pass buckets
// particles into cells instead of scanning every pair.
const gridThreshold = 512

// Pair is an unordered pair of particle indices with I < J.
type Pair struct {
	I, J int
}

// Connected reports whether a and b are strictly closer than d.
func Connected(a, b Particle, d float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy < d*d
}

// Connections lists every pair closer than d, ordered by I then J.
func Connections(ps []Particle, d float64) []Pair {
	var pairs []Pair
	eachConnection(ps, d, func(i, j int) {
		pairs = append(pairs, Pair{I: i, J: j})
	})
	return pairs
}

func eachConnection(ps []Particle, d float64, fn func(i, j int)) {
	if len(ps) > gridThreshold && d > 0 {
		eachConnectionBinned(ps, d, fn)
		return
	}
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if Connected(ps[i], ps[j], d) {
				fn(i, j)
			}
		}
	}
}

type cell struct {
	x, y int
}

func cellOf(p Particle, size float64) cell {
	return cell{x: int(math.Floor(p.X / size)), y: int(math.Floor(p.Y / size))}
}

// eachConnectionBinned is the grid variant: with cells as wide as d, any
// connected pair lies in the same or an adjacent cell.
func eachConnectionBinned(ps []Particle, d float64, fn func(i, j int)) {
	bins := make(map[cell][]int)
	for i, p := range ps {
		c := cellOf(p, d)
		bins[c] = append(bins[c], i)
	}

	var near []int
	for i, p := range ps {
		c := cellOf(p, d)
		near = near[:0]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range bins[cell{x: c.x + dx, y: c.y + dy}] {
					if j > i && Connected(p, ps[j], d) {
						near = append(near, j)
					}
				}
			}
		}
		sort.Ints(near)
		for _, j := range near {
			fn(i, j)
		}
	}
}
