package components

import (
	"testing"

	"transmute3d/internal/engine"
)

func fireTestShot(w *testWorld, element ElementTag) (*engine.GameObject, *Projectile) {
	shot := engine.NewGameObject("Shot")
	shot.Transform.Position = vec3(0, 1, 10)
	proj := NewProjectile(element, vec3(0, 0, -1))
	shot.AddComponent(proj)
	w.SpawnObject(shot)
	return shot, proj
}

func TestProjectileHitTiming(t *testing.T) {
	w := newTestWorld()
	wall := w.addBox("Wall", vec3(0, 1, -0.5), vec3(4, 4, 1), NewInteractive(ElementBounce))
	shot, _ := fireTestShot(w, ElementReflect)

	// Front face 10 units out at 50 units/sec: the hit lands on the fourth
	// 0.05s step, 0.2 seconds in.
	steps := 0
	for i := 0; i < 12; i++ {
		w.scene.Update(0.05)
		steps++
		if !shot.InScene() {
			break
		}
	}

	if steps != 4 {
		t.Errorf("Expected the hit on step 4, got %d", steps)
	}
	if shot.InScene() {
		t.Error("Reflect shots should vanish on impact")
	}
	if m := engine.GetComponent[*Interactive](wall).Material; m != ElementReflect {
		t.Errorf("Hit should transmute the wall to reflect, got %v", m)
	}
}

func TestProjectileMaxRange(t *testing.T) {
	w := newTestWorld()
	shot := engine.NewGameObject("Shot")
	shot.Transform.Position = vec3(0, 1, 10)
	shot.AddComponent(NewProjectile(ElementBounce, vec3(0, 1, 0)))
	w.SpawnObject(shot)

	for i := 0; i < 23; i++ {
		w.scene.Update(0.1)
	}
	if !shot.InScene() {
		t.Fatal("Shot inside its range should still be flying")
	}
	for i := 0; i < 3; i++ {
		w.scene.Update(0.1)
	}
	if shot.InScene() {
		t.Error("Shot past its range should remove itself")
	}
}

func TestPhaseExplosionLifecycle(t *testing.T) {
	w := newTestWorld()
	wall := w.addBox("Wall", vec3(0, 1, -0.5), vec3(4, 4, 1), NewInteractive(ElementBounce))
	shot, proj := fireTestShot(w, ElementPhase)

	for i := 0; i < 4; i++ {
		w.scene.Update(0.05)
	}

	if !proj.Exploding() {
		t.Fatal("Phase shot should explode on impact")
	}
	if !shot.InScene() {
		t.Fatal("Explosion should keep the shot alive briefly")
	}
	it := engine.GetComponent[*Interactive](wall)
	if it.Material != ElementPhase {
		t.Errorf("Hit should transmute the wall to phase, got %v", it.Material)
	}
	if it.Blocking() {
		t.Error("Phased wall must stop blocking")
	}
	if RaySolid(wall) {
		t.Error("Phased wall must turn transparent to rays")
	}

	scale := shot.Transform.Scale.X
	w.scene.Update(0.05)
	if shot.Transform.Scale.X <= scale {
		t.Error("Explosion should grow the shot each step")
	}

	for i := 0; i < 6; i++ {
		w.scene.Update(0.05)
	}
	if shot.InScene() {
		t.Error("Explosion should end after its duration")
	}
}

func TestProjectilePassesPhasedGeometry(t *testing.T) {
	w := newTestWorld()
	ghost := w.addBox("Ghost", vec3(0, 1, 5), vec3(4, 4, 1), NewInteractive(ElementPhase))
	target := w.addBox("Target", vec3(0, 1, -0.5), vec3(4, 4, 1), NewInteractive(ElementBounce))
	shot, _ := fireTestShot(w, ElementReflect)

	for i := 0; i < 8 && shot.InScene(); i++ {
		w.scene.Update(0.05)
	}

	if m := engine.GetComponent[*Interactive](ghost).Material; m != ElementPhase {
		t.Errorf("Shot must fly through phased geometry untouched, ghost became %v", m)
	}
	if m := engine.GetComponent[*Interactive](target).Material; m != ElementReflect {
		t.Errorf("Shot should hit the solid prop behind, target is %v", m)
	}
	if shot.InScene() {
		t.Error("Shot should be consumed by the hit")
	}
}

func TestHandlerlessHitStopsShot(t *testing.T) {
	w := newTestWorld()
	w.addBox("Wall", vec3(0, 1, -0.5), vec3(4, 4, 1), safeSurface())
	shot, _ := fireTestShot(w, ElementBounce)

	for i := 0; i < 6; i++ {
		w.scene.Update(0.05)
	}

	if shot.InScene() {
		t.Error("Plain geometry still stops shots, it just has nothing to transmute")
	}
}

func TestShooterCooldownAndMuzzle(t *testing.T) {
	w := newTestWorld()
	_, player := newTestAvatar(w)
	sh := NewShooter(w)
	player.AddComponent(sh)

	if sh.TryFire(ElementNone) {
		t.Error("Firing with no element selected must be a no-op")
	}
	if !sh.TryFire(ElementBounce) {
		t.Fatal("First shot should fire")
	}
	if sh.TryFire(ElementBounce) {
		t.Error("Cooldown must reject an immediate second shot")
	}

	var shotObj *engine.GameObject
	var proj *Projectile
	for _, g := range w.scene.GameObjects {
		if p := engine.GetComponent[*Projectile](g); p != nil {
			shotObj, proj = g, p
		}
	}
	if proj == nil {
		t.Fatal("Firing should spawn a projectile into the scene")
	}
	if proj.Element != ElementBounce {
		t.Errorf("Shot should carry the selected element, got %v", proj.Element)
	}
	// Spawn yaw faces -Z, so the muzzle sits half a unit down -Z of the eye.
	if !approx(shotObj.Transform.Position.Z, player.Transform.Position.Z-MuzzleOffset, 0.001) {
		t.Errorf("Shot should spawn at the muzzle, got z=%f", shotObj.Transform.Position.Z)
	}
	if !approx(shotObj.Transform.Position.Y, player.Transform.Position.Y, 0.001) {
		t.Errorf("Level look should keep the muzzle at eye height, got y=%f", shotObj.Transform.Position.Y)
	}

	sh.Update(FireCooldown + 0.01)
	if !sh.TryFire(ElementReflect) {
		t.Error("Cooldown should expire after its duration")
	}
}
