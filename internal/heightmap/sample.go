package heightmap

// sample is a neighbour read that may fall off the grid.
type sample struct {
	value   float64
	present bool
}

func present(v float64) sample { return sample{value: v, present: true} }

var absent = sample{}

// average returns the mean of the present samples. Every cell the recursion
// visits has at least one in-bounds neighbour, so an empty neighbourhood means
// the grid was driven outside the generation entry points.
func average(values [4]sample) float64 {
	var sum float64
	n := 0
	for _, s := range values {
		if !s.present {
			continue
		}
		sum += s.value
		n++
	}
	if n == 0 {
		panic("heightmap: average over empty neighbourhood")
	}
	return sum / float64(n)
}
