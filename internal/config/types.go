package config

// FaceKind names the Go type faces are decoded into
type FaceKind string

const (
	FaceKindInt    FaceKind = "int"
	FaceKindString FaceKind = "string"
)

// Definition describes a game loaded from YAML
type Definition struct {
	Name  string          `yaml:"name"`
	Faces FaceKind        `yaml:"faces"`
	Dice  []DieDefinition `yaml:"dice"`
}

// DieDefinition lists a die's faces and any non-default weights.
// Faces are kept as text and parsed according to Definition.Faces.
type DieDefinition struct {
	Faces   []string           `yaml:"faces"`
	Weights map[string]float64 `yaml:"weights,omitempty"`
}

// Settings are read from the environment by the CLI
type Settings struct {
	GameFile string `env:"MONTECARLO_GAME_FILE,required"`
	Rolls    int    `env:"MONTECARLO_ROLLS" envDefault:"1000"`
	Seed     uint64 `env:"MONTECARLO_SEED" envDefault:"0"`
	Form     string `env:"MONTECARLO_FORM" envDefault:"wide"`
	ShowRows int    `env:"MONTECARLO_SHOW_ROWS" envDefault:"10"`
}
