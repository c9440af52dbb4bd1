package session

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "burnished", "clear", "cloudy", "copper", "crisp",
		"dappled", "dim", "dusky", "faint", "frosted", "gilded", "glassy",
		"glowing", "golden", "hazy", "hollow", "indigo", "iridescent", "lucid",
		"mirrored", "misty", "molten", "opal", "pale", "pearly", "polished",
		"prismatic", "radiant", "scarlet", "shadowed", "sheer", "silver",
		"smoky", "soft", "sunlit", "tinted", "twilight", "velvet", "vivid",
	}

	nouns = []string{
		"aurora", "beam", "candle", "caustic", "comet", "crystal", "dawn",
		"dewdrop", "ember", "facet", "flare", "gleam", "glint", "halo",
		"horizon", "lantern", "lens", "marble", "meteor", "mirror", "moon",
		"nebula", "orb", "penumbra", "pebble", "prism", "quartz", "rainbow",
		"ripple", "shimmer", "spark", "sphere", "star", "sunbeam", "umbra",
		"vortex", "wave",
	}
)

// GenerateSessionName creates a memorable identifier in the format "adjective-noun"
func GenerateSessionName() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]

	return adj + "-" + noun
}

// GenerateSessionID combines the memorable name with a UTC timestamp
func GenerateSessionID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateSessionName() + "-" + timestamp
}
