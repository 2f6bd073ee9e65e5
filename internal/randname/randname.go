// Package randname generates launcher profile IDs and display names.
package randname

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// minerals are used as the first word of generated profile names.
var minerals = []string{
	"Adakite", "Agate", "Amethyst", "Andesite", "Anorthosite", "Basalt",
	"Beryl", "Calcite", "Chert", "Cinnabar", "Dacite", "Diorite",
	"Dolomite", "Feldspar", "Flint", "Gabbro", "Garnet", "Gneiss",
	"Granite", "Gypsum", "Jasper", "Kimberlite", "Komatiite", "Limestone",
	"Magnetite", "Marble", "Obsidian", "Olivine", "Pumice", "Pyrite",
	"Quartzite", "Rhyolite", "Schist", "Scoria", "Shale", "Slate",
	"Tuff", "Turquoise",
}

// NewID returns a random 32 character lowercase hex ID, the same shape the
// launcher uses for its own profile keys.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewName returns a random name such as "Adakite 58".
func NewName() string {
	return fmt.Sprintf("%s %d", minerals[rand.Intn(len(minerals))], rand.Intn(99)+1)
}
