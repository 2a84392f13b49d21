// internal/schema/catalogue.go
package schema

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/tamzrod/saj-reader/internal/decode"
)

//go:embed catalogue/*.yaml
var catalogueFS embed.FS

var (
	loadOnce  sync.Once
	catalogue map[string]*decode.Schema
	loadErr   error
)

func loadCatalogue() {
	entries, err := catalogueFS.ReadDir("catalogue")
	if err != nil {
		loadErr = err
		return
	}

	catalogue = make(map[string]*decode.Schema, len(entries))
	for _, e := range entries {
		b, err := catalogueFS.ReadFile(path.Join("catalogue", e.Name()))
		if err != nil {
			loadErr = err
			return
		}
		s, err := Parse(b)
		if err != nil {
			loadErr = fmt.Errorf("%s: %w", e.Name(), err)
			return
		}
		if want := strings.TrimSuffix(e.Name(), ".yaml"); s.Name != want {
			loadErr = fmt.Errorf("%s: schema name %q does not match file name", e.Name(), s.Name)
			return
		}
		catalogue[s.Name] = s
	}
}

// Builtin returns a catalogue layout by name. Schemas are shared and must not be modified.
func Builtin(name string) (*decode.Schema, error) {
	loadOnce.Do(loadCatalogue)
	if loadErr != nil {
		return nil, fmt.Errorf("schema: catalogue: %w", loadErr)
	}

	s, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("schema: unknown block %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the catalogue layouts in alphabetical order.
func Names() []string {
	loadOnce.Do(loadCatalogue)

	out := make([]string, 0, len(catalogue))
	for n := range catalogue {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the layout for block, loaded from override when it is set.
func Resolve(block, override string) (*decode.Schema, error) {
	if override != "" {
		return Load(override)
	}
	return Builtin(block)
}
