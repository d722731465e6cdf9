package sampler

import (
	"math/rand"
	"time"
)

// random обертка над генератором случайных чисел с нужными распределениями
type random struct {
	r *rand.Rand
}

func newRandom(seed int64) random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return random{r: rand.New(rand.NewSource(seed))}
}

// u равномерное распределение на [low, high]
func (r random) u(low, high float64) float64 {
	return low + (high-low)*r.r.Float64()
}

// intn равномерное распределение на целых [low, high] включительно
func (r random) intn(low, high int) int {
	return low + r.r.Intn(high-low+1)
}
