package gamedata

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed compositions.yaml
var compositionsYAML []byte

// Composition is one known opposing-force archetype: a named, ordered
// sequence of escalating attack-wave unit sets.
type Composition struct {
	Name  string     `yaml:"name"`
	Waves [][]string `yaml:"waves"`
}

type compositionFile struct {
	Compositions []Composition `yaml:"compositions"`
}

var loadOnce = sync.OnceValues(func() ([]Composition, error) {
	var f compositionFile
	if err := yaml.Unmarshal(compositionsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse embedded composition library: %w", err)
	}
	if len(f.Compositions) == 0 {
		return nil, fmt.Errorf("embedded composition library is empty")
	}
	return f.Compositions, nil
})

// Compositions returns the built-in composition template library in its
// declaration order. The returned slice is shared; callers must not mutate it.
func Compositions() ([]Composition, error) {
	return loadOnce()
}
