package util

import (
	"fmt"

	"blackjack-engine/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Lucky", "Bold", "Cautious", "Steady", "Daring", "Sly", "Patient",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Okapi", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

// RandomName returns a seat name made of an adjective and an animal
func RandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}

// RandomNames returns n distinct seat names
// Once the combinations run out a seat number is appended.
func RandomNames(gen rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		name := RandomName(gen)
		for attempt := 0; seen[name] && attempt < 10; attempt++ {
			name = RandomName(gen)
		}

		if seen[name] {
			name = fmt.Sprintf("%s %d", name, i+1)
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
