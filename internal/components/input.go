package components

// Input is one simulation step's worth of player intent, assembled by the
// host loop from whatever device it polls. The simulation core never reads
// input devices itself, which keeps every behavior reproducible headlessly.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	// Jump is edge-triggered: true only on the step the key went down.
	Jump bool
	// Fire carries the selected element while the trigger is held,
	// ElementNone otherwise. The shooter's cooldown paces actual shots.
	Fire ElementTag
	// LookX/LookY are the pointer deltas for this step, in pixels.
	LookX float32
	LookY float32
	// Locked reports whether pointer capture is active. While unlocked the
	// avatar ignores look, move, jump and fire, but keeps simulating.
	Locked bool
}
