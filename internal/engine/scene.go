package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	// World gives components access to world-level services (collider
	// snapshots, raycasts, spawning) without importing the world package.
	World  WorldAccess
	uidMap map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject unmounts the object and all of its children. The Scene
// back-reference is cleared so stale cached pointers can be detected. The
// list is rebuilt rather than shifted in place: views taken by an in-flight
// Update must not see elements move under them.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			next := make([]*GameObject, 0, len(s.GameObjects)-1)
			next = append(next, s.GameObjects[:i]...)
			next = append(next, s.GameObjects[i+1:]...)
			s.GameObjects = next
			break
		}
	}
	delete(s.uidMap, g.UID)
	g.Scene = nil
}

// FindByUID is an O(1) handle lookup.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Objects may spawn or despawn mid-update (projectile hits), so iterate
	// over a stable view of the list.
	objects := s.GameObjects
	for _, g := range objects {
		if g.Scene != s {
			continue
		}
		g.Update(deltaTime)
	}
}
