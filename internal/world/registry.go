package world

import (
	"sync/atomic"

	"transmute3d/internal/components"
	"transmute3d/internal/engine"
)

// Entry is one registered collidable with its hot components resolved once
// at registration, so per-frame queries never walk component lists.
type Entry struct {
	Object      *engine.GameObject
	Collider    *components.BoxCollider
	Surface     *components.Surface
	Interactive *components.Interactive
}

// Live reports whether the entry's object is still mounted. Entries outlive
// removal until the next registry mutation, so every reader checks this.
func (e Entry) Live() bool {
	return e.Object.InScene()
}

// RaySolid reports whether probes and projectiles can hit this entry.
func (e Entry) RaySolid() bool {
	return components.RaySolidParts(e.Surface, e.Interactive)
}

// BodySolid reports whether this entry stops the avatar's body.
func (e Entry) BodySolid() bool {
	return components.BodySolidParts(e.Surface, e.Interactive)
}

// Registry caches every collidable in the live level. It replaces scanning
// the scene per query: membership changes on spawn, despawn and level entry,
// never on a timer. Mutations build a fresh slice and publish it atomically,
// so a reader mid-iteration keeps a coherent view even while another
// goroutine (the level watcher, a stress driver) swaps the level out.
type Registry struct {
	snapshot atomic.Pointer[[]Entry]
}

func NewRegistry() *Registry {
	r := &Registry{}
	empty := make([]Entry, 0)
	r.snapshot.Store(&empty)
	return r
}

func newEntry(g *engine.GameObject) (Entry, bool) {
	col := engine.GetComponent[*components.BoxCollider](g)
	if col == nil {
		return Entry{}, false
	}
	return Entry{
		Object:      g,
		Collider:    col,
		Surface:     engine.GetComponent[*components.Surface](g),
		Interactive: engine.GetComponent[*components.Interactive](g),
	}, true
}

// Register adds the object's entry if it carries a collider. Objects without
// one (projectiles, the player) never enter, which is what keeps them
// invisible to every collision and ray query.
func (r *Registry) Register(g *engine.GameObject) {
	e, ok := newEntry(g)
	if !ok {
		return
	}
	old := *r.snapshot.Load()
	next := make([]Entry, 0, len(old)+1)
	next = append(next, old...)
	next = append(next, e)
	r.snapshot.Store(&next)
}

// Unregister drops the object's entry.
func (r *Registry) Unregister(g *engine.GameObject) {
	old := *r.snapshot.Load()
	next := make([]Entry, 0, len(old))
	for _, e := range old {
		if e.Object != g {
			next = append(next, e)
		}
	}
	r.snapshot.Store(&next)
}

// Rebuild replaces the cache with every collidable currently in the scene.
// Called once per level entry.
func (r *Registry) Rebuild(s *engine.Scene) {
	next := make([]Entry, 0, len(s.GameObjects))
	for _, g := range s.GameObjects {
		if e, ok := newEntry(g); ok {
			next = append(next, e)
		}
	}
	r.snapshot.Store(&next)
}

// Entries returns the current snapshot.
func (r *Registry) Entries() []Entry {
	return *r.snapshot.Load()
}

func (r *Registry) Len() int {
	return len(*r.snapshot.Load())
}
