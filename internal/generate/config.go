package generate

import "math/rand"

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int
	MinRoomSize         int
	MaxRoomSize         int
	// Level is the number being generated; MinLevel and MaxLevels bound the
	// stairs that may appear on it.
	Level              int
	MinLevel           int
	MaxLevels          int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	Rand               *rand.Rand
}
