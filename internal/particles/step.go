package particles

import "math"

// Repulsion returns the acceleration the pointer exerts on p. It points away
// from the pointer with magnitude RepulsionStrength·(1 − d/InfluenceRadius)
// for 0 < d < InfluenceRadius and is zero otherwise.
func Repulsion(p Particle, ptr Pointer, cfg Config) (ax, ay float64) {
	if !ptr.Present {
		return 0, 0
	}
	dx := p.X - ptr.X
	dy := p.Y - ptr.Y
	distSq := dx*dx + dy*dy
	if distSq <= 0 || distSq >= cfg.InfluenceRadius*cfg.InfluenceRadius {
		return 0, 0
	}
	dist := math.Sqrt(distSq)
	f := cfg.RepulsionStrength * (1 - dist/cfg.InfluenceRadius)
	return dx / dist * f, dy / dist * f
}

// Step advances every particle by dt seconds in place: pointer repulsion,
// speed clamp, position integration and edge wrapping.
func Step(ps []Particle, ptr Pointer, dt, width, height float64, cfg Config) {
	maxSpeed := cfg.MaxSpeed()
	for i := range ps {
		p := &ps[i]

		ax, ay := Repulsion(*p, ptr, cfg)
		p.VX += ax * dt
		p.VY += ay * dt

		clampSpeed(p, maxSpeed)

		p.X += p.VX * dt
		p.Y += p.VY * dt

		p.X = wrap(p.X, p.Radius, width)
		p.Y = wrap(p.Y, p.Radius, height)
	}
}

func clampSpeed(p *Particle, maxSpeed float64) {
	speedSq := p.VX*p.VX + p.VY*p.VY
	if speedSq <= maxSpeed*maxSpeed {
		return
	}
	speed := math.Sqrt(speedSq)
	p.VX = p.VX / speed * maxSpeed
	p.VY = p.VY / speed * maxSpeed
}

// wrap teleports v to the opposite edge once it leaves [-r, size+r).
// The upper bound is exclusive, so a particle leaving the low edge lands
// just inside it.
func wrap(v, r, size float64) float64 {
	switch {
	case v < -r:
		return math.Nextafter(size+r, math.Inf(-1))
	case v >= size+r:
		return -r
	}
	return v
}
