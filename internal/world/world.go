package world

import (
	"fmt"
	"log"

	"transmute3d/internal/components"
	"transmute3d/internal/engine"
	"transmute3d/internal/level"
	"transmute3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene graph, the collider registry and the stage
// progression, and implements engine.WorldAccess for the component layer.
type World struct {
	Scene    *engine.Scene
	Registry *Registry

	Player  *engine.GameObject
	Avatar  *components.Avatar
	Shooter *components.Shooter
	Camera  *components.Camera

	// Deaths across the whole run, for the HUD.
	Deaths int

	set            *level.Set
	stageIndex     int
	advancePending bool
}

// New builds a world around the given stage set and enters its first stage.
func New(set *level.Set) *World {
	w := &World{
		Scene:    engine.NewScene("world"),
		Registry: NewRegistry(),
		set:      set,
	}
	w.Scene.World = w
	w.spawnPlayer()
	w.EnterStage(0)
	return w
}

func (w *World) spawnPlayer() {
	player := engine.NewGameObject("Player")
	av := components.NewAvatar()
	player.AddComponent(av)
	sh := components.NewShooter(w)
	player.AddComponent(sh)
	cam := components.NewCamera()
	player.AddComponent(cam)
	w.Scene.AddGameObject(player)
	player.Start()

	av.OnStageComplete.AddListener(func() { w.advancePending = true })
	av.OnDeath.AddListener(func(reason components.DeathReason) {
		w.Deaths++
		log.Printf("death by %s on %q", reason, w.CurrentStage().Name)
	})

	w.Player, w.Avatar, w.Shooter, w.Camera = player, av, sh, cam
}

// Step advances the whole simulation one frame: any pending stage advance,
// then the avatar, then every scene component (shots, cooldowns).
func (w *World) Step(dt float32, in components.Input) {
	if w.advancePending {
		w.advancePending = false
		w.EnterStage(w.stageIndex + 1)
	}
	w.Avatar.Step(dt, in)
	if in.Locked && in.Fire != components.ElementNone && !w.Avatar.IsDying() {
		w.Shooter.TryFire(in.Fire)
	}
	w.Scene.Update(dt)
}

// EnterStage tears down the current stage's objects and instantiates the
// indexed one. The index wraps, so finishing the last stage loops back.
func (w *World) EnterStage(index int) {
	count := len(w.set.Stages)
	index = ((index % count) + count) % count
	w.stageIndex = index
	stage := w.set.Stages[index]

	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if g != w.Player {
			w.Scene.RemoveGameObject(g)
		}
	}
	for i, p := range stage.Props {
		w.Scene.AddGameObject(buildProp(p, i))
	}
	w.Scene.Start()
	w.Registry.Rebuild(w.Scene)
	w.Avatar.BindLevel(bindingFor(stage))
	log.Printf("stage %d/%d: %s", index+1, count, stage.Name)
}

// ResetLevel restores the current stage in place: materials return to their
// declared initial state, in-flight shots despawn, the avatar respawns.
func (w *World) ResetLevel() {
	for _, e := range w.Registry.Entries() {
		if e.Live() && e.Interactive != nil {
			e.Interactive.ResetMaterial()
		}
	}
	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if engine.GetComponent[*components.Projectile](g) != nil {
			w.Destroy(g)
		}
	}
	w.Avatar.BindLevel(bindingFor(w.CurrentStage()))
}

// ApplySet swaps in a reloaded stage set and re-enters the current stage,
// falling back to the first when the new set is shorter.
func (w *World) ApplySet(set *level.Set) {
	w.set = set
	if w.stageIndex >= len(set.Stages) {
		w.stageIndex = 0
	}
	w.EnterStage(w.stageIndex)
}

func (w *World) CurrentStage() level.Stage { return w.set.Stages[w.stageIndex] }
func (w *World) StageIndex() int           { return w.stageIndex }
func (w *World) StageCount() int           { return len(w.set.Stages) }

func bindingFor(stage level.Stage) components.LevelBinding {
	return components.LevelBinding{
		SpawnPoint:  stage.Spawn.RL(),
		SpawnYaw:    stage.SpawnYaw,
		GoalZ:       stage.GoalZ,
		DeathHeight: stage.DeathPlane(),
		HazardZ:     stage.HazardZ,
	}
}

func buildProp(p level.Prop, index int) *engine.GameObject {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("Prop_%d", index)
	}
	obj := engine.NewGameObject(name)
	obj.Transform.Position = p.Position.RL()
	obj.AddComponent(components.NewBoxCollider(p.Size.RL()))

	surf := components.NewSurface()
	surf.Safe = p.Safe
	surf.Target = p.Target
	surf.Lava = p.Lava
	surf.Decorative = p.Decorative
	obj.AddComponent(surf)

	if p.Interactive() {
		tag, _ := components.ElementTagFromName(p.Material)
		it := components.NewInteractive(tag)
		it.Boost = p.Boost.RL()
		obj.AddComponent(it)
	}
	return obj
}

// GetCollidableObjects returns the live registered objects.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	entries := w.Registry.Entries()
	result := make([]*engine.GameObject, 0, len(entries))
	for _, e := range entries {
		if e.Live() {
			result = append(result, e.Object)
		}
	}
	return result
}

// SpawnObject mounts a runtime-created object (projectiles, mostly) and
// registers it when collidable.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Registry.Register(g)
}

// Destroy unmounts the object and drops its registry entry.
func (w *World) Destroy(g *engine.GameObject) {
	w.Registry.Unregister(g)
	w.Scene.RemoveGameObject(g)
}

// Raycast returns the nearest ray-solid hit within maxDistance.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := engine.RaycastResult{Distance: maxDistance}
	found := false
	for _, e := range w.Registry.Entries() {
		if !e.Live() || !e.RaySolid() {
			continue
		}
		hit, ok := physics.RaycastBox(origin, direction, e.Collider.AABB(), maxDistance)
		if !ok || hit.Distance >= closest.Distance {
			continue
		}
		closest = engine.RaycastResult{
			GameObject: e.Object,
			Point:      hit.Point,
			Normal:     hit.Normal,
			Distance:   hit.Distance,
		}
		found = true
	}
	return closest, found
}
