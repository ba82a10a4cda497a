package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by the component that owns a view direction,
// the avatar here. The camera follows whichever provider it finds on its
// object or an ancestor.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
}

// BaseComponent supplies the no-op half of Component; concrete components
// embed it and override what they need.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
