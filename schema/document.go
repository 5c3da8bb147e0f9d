package schema

import (
	"github.com/0xalexb/confgen/field"
)

// Log levels accepted in the log section.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log output types accepted in the log section.
const (
	OutputConsole = "console"
	OutputJSON    = "json"
)

// URLScheme is the prefix every connection URL must carry.
const URLScheme = "redis://"

// DefaultURL is the connection URL of a new document.
const DefaultURL = URLScheme + "127.0.0.1:6379"

// Log is the log section of a document.
type Log struct {
	Disabled bool   `yaml:"disabled"`
	Level    string `yaml:"level"`
	Type     string `yaml:"type"`
}

// Conditions are the numeric entry conditions of a lottery.
type Conditions struct {
	CountdownRange field.Range `yaml:"countdown_range"`
	MaxViewers     field.Value `yaml:"max_viewers"`
	MinProbability field.Value `yaml:"min_probability"`
}

// Lottery holds lottery settings. The fan club choice type F decides whether
// the record is a global section (Flag) or a group override (TriState).
type Lottery[F FanClubChoice] struct {
	Conditions      Conditions  `yaml:"conditions"`
	FanClub         F           `yaml:"fan_club"`
	SwitchThreshold field.Value `yaml:"switch_threshold"`
	PostStay        field.Range `yaml:"post_stay"`
}

// Global is the document-level lottery section.
type Global = Lottery[Flag]

// Override is a group-level lottery section where every field may inherit.
type Override = Lottery[TriState]

// Group is a named worker group.
type Group struct {
	ID      string      `yaml:"id"`
	Threads field.Value `yaml:"threads"`
	Inherit bool        `yaml:"inherit"`
	Lottery Override    `yaml:"lottery"`
}

// Connection is the connection section of a document.
type Connection struct {
	URL string `yaml:"url"`
}

// Document is the raw, editable configuration draft.
type Document struct {
	Log        Log        `yaml:"log"`
	Lottery    Global     `yaml:"lottery"`
	Groups     []Group    `yaml:"groups"`
	Connection Connection `yaml:"connection"`
}

// NewDocument returns a document populated with the defaults of a new session.
func NewDocument() *Document {
	return &Document{
		Log: Log{
			Disabled: false,
			Level:    LevelInfo,
			Type:     OutputConsole,
		},
		Lottery: Global{
			Conditions: Conditions{
				CountdownRange: field.NewRange(30, 180),
				MaxViewers:     field.Number(5000),
				MinProbability: field.Number(80),
			},
			FanClub:         false,
			SwitchThreshold: field.Empty(),
			PostStay:        field.NewRange(5, 10),
		},
		Groups: nil,
		Connection: Connection{
			URL: DefaultURL,
		},
	}
}

// NewGroup returns a group that fully inherits the global lottery section.
func NewGroup(id string) Group {
	return Group{
		ID:      id,
		Threads: field.Number(1),
		Inherit: true,
		Lottery: Override{
			Conditions:      Conditions{},
			FanClub:         TriInherit,
			SwitchThreshold: field.Empty(),
			PostStay:        field.Range{},
		},
	}
}

// SetDefaults fills empty choice fields of a loaded draft. Empty numeric
// fields are meaningful and left untouched.
func (d *Document) SetDefaults() bool {
	changed := false

	if d.Log.Level == "" {
		d.Log.Level = LevelInfo
		changed = true
	}

	if d.Log.Type == "" {
		d.Log.Type = OutputConsole
		changed = true
	}

	for i := range d.Groups {
		if d.Groups[i].Lottery.FanClub == "" {
			d.Groups[i].Lottery.FanClub = TriInherit
			changed = true
		}
	}

	return changed
}

// Validate runs whole-document validation and returns a *ValidationError
// when any issue is found.
func (d *Document) Validate() error {
	issues := Validate(d)
	if len(issues) == 0 {
		return nil
	}

	return &ValidationError{Issues: issues}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := *d
	if d.Groups != nil {
		out.Groups = make([]Group, len(d.Groups))
		copy(out.Groups, d.Groups)
	}

	return &out
}
