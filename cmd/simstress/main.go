// Headless throughput check for the simulation core: avatar steps and
// projectile volleys against growing prop counts, no window needed.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"transmute3d/internal/components"
	"transmute3d/internal/level"
	"transmute3d/internal/world"
)

const (
	stepDT     = float32(1.0 / 120.0)
	iterations = 2000
)

func main() {
	// The world logs stage transitions; keep benchmark output clean.
	log.SetOutput(io.Discard)

	fmt.Printf("simulation core stress, %d steps per pass at %.2f ms/step\n\n", iterations, stepDT*1000)

	for _, count := range []int{16, 64, 256, 1024, 4096} {
		benchStage(count)
	}
}

func benchStage(props int) {
	quiet := timeSteps(props, false)
	volley := timeSteps(props, true)

	ratio := float64(volley) / float64(quiet)
	headroom := float64(time.Second/120) / float64(volley)

	fmt.Printf("%5d props: walk %10v/step | walk+fire %10v/step (%.2fx) | %6.0fx 120fps headroom\n",
		props, quiet, volley, ratio, headroom)
}

func timeSteps(props int, fire bool) time.Duration {
	w := world.New(syntheticSet(props))
	in := components.Input{Forward: true, Locked: true}

	// Let the avatar land and reach cruise speed first.
	for i := 0; i < 120; i++ {
		w.Step(stepDT, in)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		step := in
		if fire && i%20 == 0 {
			step.Fire = components.ElementPhase
		}
		w.Step(stepDT, step)
	}
	return time.Since(start) / iterations
}

// syntheticSet builds one long corridor stage with floating props scattered
// around the walking line. The clutter sits above head height so the run
// stays unobstructed while every ground probe, aim probe and projectile ray
// still scans it.
func syntheticSet(count int) *level.Set {
	rng := rand.New(rand.NewSource(42))
	materials := []string{"", "bounce", "phase", "reflect"}

	props := []level.Prop{{
		Name:     "Corridor",
		Position: level.Vec3{Y: -0.5},
		Size:     level.Vec3{X: 40, Y: 1, Z: 400},
		Safe:     true,
	}}
	for i := 0; i < count; i++ {
		props = append(props, level.Prop{
			Name:         fmt.Sprintf("Clutter_%d", i),
			Position:     level.Vec3{X: rng.Float32()*120 - 60, Y: 4 + rng.Float32()*36, Z: rng.Float32()*320 - 160},
			Size:         level.Vec3{X: 1 + rng.Float32()*2, Y: 1 + rng.Float32()*2, Z: 1 + rng.Float32()*2},
			Material:     materials[i%len(materials)],
			Transmutable: i%2 == 0,
		})
	}

	return &level.Set{Stages: []level.Stage{{
		Name:     fmt.Sprintf("stress_%d", count),
		Spawn:    level.Vec3{Y: 1.75, Z: 150},
		SpawnYaw: -90,
		GoalZ:    -190,
		HazardZ:  -10000,
		Props:    props,
	}}}
}
