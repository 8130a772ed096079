package resource

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

const (
	indexBits = 24
	indexMask = 1<<indexBits - 1
	maxIndex  = indexMask
)

func makeHandle(index uint32, gen uint8) Handle {
	return Handle(uint32(gen)<<indexBits | (index & indexMask))
}

func (h Handle) index() uint32 { return uint32(h) & indexMask }
func (h Handle) gen() uint8    { return uint8(uint32(h) >> indexBits) }

// Kind tags an entry so lookups can be checked against the expected variant.
type Kind uint8

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents a lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Dropper is optionally implemented by values that need cleanup on removal.
type Dropper interface {
	Drop()
}
