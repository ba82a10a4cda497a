package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("stage")
	pad := NewGameObject("Pad")

	scene.AddGameObject(pad)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != pad {
		t.Fatal("AddGameObject should append the object")
	}
	if pad.Scene != scene {
		t.Error("Mounting should set the Scene back-reference")
	}
	if scene.FindByUID(pad.UID) != pad {
		t.Error("Mounting should index the object by UID")
	}
}

func TestSceneFindByUIDMiss(t *testing.T) {
	scene := NewScene("stage")
	if scene.FindByUID(99999) != nil {
		t.Error("An unknown UID should look up as nil")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("stage")
	pad := NewGameObject("Pad")
	floor := NewGameObject("Floor")

	scene.AddGameObject(pad)
	scene.AddGameObject(floor)

	scene.RemoveGameObject(pad)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != floor {
		t.Fatal("RemoveGameObject should drop exactly the given object")
	}
	if scene.FindByUID(pad.UID) != nil {
		t.Error("Removal should clear the UID index entry")
	}
	if scene.FindByUID(floor.UID) != floor {
		t.Error("Removal must not disturb other index entries")
	}
}

func TestSceneRemoveClearsBackReference(t *testing.T) {
	scene := NewScene("stage")
	pad := NewGameObject("Pad")

	scene.AddGameObject(pad)
	if !pad.InScene() {
		t.Fatal("A mounted object reports InScene")
	}

	scene.RemoveGameObject(pad)
	if pad.InScene() || pad.Scene != nil {
		t.Error("An unmounted object must not claim a scene")
	}
}

func TestSceneRemoveTakesChildren(t *testing.T) {
	scene := NewScene("stage")
	tower := NewGameObject("Tower")
	ledge := NewGameObject("Ledge")

	scene.AddGameObject(tower)
	scene.AddGameObject(ledge)
	tower.AddChild(ledge)

	scene.RemoveGameObject(tower)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Children should unmount with their parent, %d left", len(scene.GameObjects))
	}
	if scene.FindByUID(ledge.UID) != nil {
		t.Error("Child index entries should clear too")
	}
}

func TestSceneStableViewDuringRemoval(t *testing.T) {
	scene := NewScene("stage")
	for _, name := range []string{"A", "B", "C", "D"} {
		scene.AddGameObject(NewGameObject(name))
	}

	view := scene.GameObjects
	scene.RemoveGameObject(scene.FindByName("B"))

	// A view captured before the removal still sees its original elements
	// in their original slots.
	if len(view) != 4 {
		t.Fatalf("Captured view changed length: %d", len(view))
	}
	for i, name := range []string{"A", "B", "C", "D"} {
		if view[i].Name != name {
			t.Errorf("Slot %d shifted to %s under the captured view", i, view[i].Name)
		}
	}
	if len(scene.GameObjects) != 3 {
		t.Errorf("Fresh reads should see the removal, got %d", len(scene.GameObjects))
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("stage")
	pad := NewGameObject("BouncePad")
	scene.AddGameObject(pad)

	if scene.FindByName("BouncePad") != pad {
		t.Error("FindByName should locate a mounted object")
	}
	if scene.FindByName("GhostDoor") != nil {
		t.Error("FindByName should be nil for an unknown name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("stage")
	poolA := NewGameObject("LavaPoolA")
	poolB := NewGameObject("LavaPoolB")
	pad := NewGameObject("Pad")

	poolA.Tags = []string{"hazard"}
	poolB.Tags = []string{"hazard", "floor"}
	pad.Tags = []string{"interactive"}

	scene.AddGameObject(poolA)
	scene.AddGameObject(poolB)
	scene.AddGameObject(pad)

	if got := len(scene.FindByTag("hazard")); got != 2 {
		t.Errorf("Expected 2 hazards, got %d", got)
	}
	if got := len(scene.FindByTag("interactive")); got != 1 {
		t.Errorf("Expected 1 interactive, got %d", got)
	}
	if got := len(scene.FindByTag("goal")); got != 0 {
		t.Errorf("Expected no matches for an unused tag, got %d", got)
	}
}

func TestSceneLazyUIDMap(t *testing.T) {
	scene := NewScene("stage")
	if scene.uidMap == nil {
		t.Fatal("NewScene should initialize the UID index")
	}

	// A zero-value scene still works; the index appears on first mount.
	var bare Scene
	obj := NewGameObject("Prop")
	bare.AddGameObject(obj)
	if bare.FindByUID(obj.UID) != obj {
		t.Error("A zero-value scene should index on first AddGameObject")
	}
}
