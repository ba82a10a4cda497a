package level

import (
	"fmt"
	"os"

	"transmute3d/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultDeathHeight is the fail-safe kill plane used when a stage omits one.
const DefaultDeathHeight = -2.5

// Vec3 is the YAML shape of a world vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) RL() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Prop is one placed box in a stage. Flags mirror the surface markers the
// simulation reads; a prop with a material (or transmutable: true) gets
// interactive state.
type Prop struct {
	Name     string `yaml:"name"`
	Position Vec3   `yaml:"position"`
	Size     Vec3   `yaml:"size"`
	// Material is the initial transmutation state: "", none, bounce/bouncy,
	// phase, reflect/reflective.
	Material string `yaml:"material"`
	// Transmutable forces interactive state even with no initial material.
	Transmutable bool `yaml:"transmutable"`
	// Boost is the contact kick granted while the prop is reflective.
	Boost      Vec3 `yaml:"boost"`
	Safe       bool `yaml:"safe"`
	Target     bool `yaml:"target"`
	Lava       bool `yaml:"lava"`
	Decorative bool `yaml:"decorative"`
}

// Interactive reports whether the prop carries mutable material state.
func (p Prop) Interactive() bool {
	tag, _ := components.ElementTagFromName(p.Material)
	return p.Transmutable || tag != components.ElementNone
}

// Stage is one loadable level.
type Stage struct {
	Name     string  `yaml:"name"`
	Spawn    Vec3    `yaml:"spawn"`
	SpawnYaw float32 `yaml:"spawn_yaw"`
	// GoalZ completes the stage when crossed from the spawn side.
	GoalZ float32 `yaml:"goal_z"`
	// DeathHeight is the fail-safe kill plane. Omitted means the default;
	// it is a pointer because zero is a legitimate plane.
	DeathHeight *float32 `yaml:"death_height"`
	// HazardZ splits the fail-safe death reason: falls on the low-Z side
	// count as lava, the rest as void.
	HazardZ float32 `yaml:"hazard_z"`
	Props   []Prop  `yaml:"props"`
}

// DeathPlane returns the stage's fail-safe height.
func (s Stage) DeathPlane() float32 {
	if s.DeathHeight == nil {
		return DefaultDeathHeight
	}
	return *s.DeathHeight
}

// Set is a stage file: an ordered progression of stages.
type Set struct {
	Stages []Stage `yaml:"stages"`
}

// LoadSpec reads any YAML document into the given spec type.
func LoadSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("level: read %s: %w", path, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("level: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// Load reads and validates a stage set from disk.
func Load(path string) (*Set, error) {
	set, err := LoadSpec[Set](path)
	if err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	return &set, nil
}

// Parse reads and validates a stage set from memory.
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate rejects sets the world cannot instantiate. Bad data fails at load
// time, not three stages into a run.
func (s *Set) Validate() error {
	if len(s.Stages) == 0 {
		return fmt.Errorf("no stages")
	}
	for i, stage := range s.Stages {
		name := stage.Name
		if name == "" {
			name = fmt.Sprintf("stage %d", i)
		}
		for j, p := range stage.Props {
			if _, ok := components.ElementTagFromName(p.Material); !ok {
				return fmt.Errorf("%s: prop %d (%s): unknown material %q", name, j, p.Name, p.Material)
			}
			if p.Size.X <= 0 || p.Size.Y <= 0 || p.Size.Z <= 0 {
				return fmt.Errorf("%s: prop %d (%s): size must be positive", name, j, p.Name)
			}
		}
	}
	return nil
}
