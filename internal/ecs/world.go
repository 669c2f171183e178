package ecs

import (
	"fmt"
	"slices"
)

// World is the entity arena and component store shared by every level of a session.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity, replacing any component of the same
// type. Owned components are bound to id; adding one that already belongs to a
// different entity panics.
func (w *World) Add(id EntityID, c Component) {
	if o, ok := c.(Owned); ok {
		if prev := o.OwnerID(); prev != NilEntity && prev != id {
			panic(fmt.Sprintf("ecs: component %d already owned by entity %d, cannot attach to %d", c.Type(), prev, id))
		}
		o.SetOwner(id)
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity. A detached owned component is
// released so it could be attached elsewhere.
func (w *World) Remove(id EntityID, t ComponentType) {
	store := w.components[t]
	if store == nil {
		return
	}
	if o, ok := store[id].(Owned); ok {
		o.SetOwner(NilEntity)
	}
	delete(store, id)
}

// OwnerOf returns the entity c is attached to, or NilEntity when c is not
// stored in this world.
func (w *World) OwnerOf(c Owned) EntityID {
	id := c.OwnerID()
	if id == NilEntity || w.Get(id, c.Type()) != c {
		return NilEntity
	}
	return id
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.alive)
}
