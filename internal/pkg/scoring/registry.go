package scoring

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	QuestionnaireFull  = "mna-full"
	QuestionnaireShort = "mna-sf"
)

//go:embed definitions/*.yaml
var definitionFiles embed.FS

var registry = mustLoadRegistry()

// Lookup returns the built-in definition with the given id.
func Lookup(id string) (*Definition, bool) {
	def, ok := registry[id]
	return def, ok
}

// Default is the long-form questionnaire, used when a record or a request
// does not name one.
func Default() *Definition {
	return registry[QuestionnaireFull]
}

// Resolve is Lookup with the default applied to an empty id.
func Resolve(id string) (*Definition, bool) {
	if id == "" {
		return Default(), true
	}
	return Lookup(id)
}

// Definitions lists the built-in definitions ordered by id.
func Definitions() []*Definition {
	defs := make([]*Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

func mustLoadRegistry() map[string]*Definition {
	defs, err := LoadDefinitions(definitionFiles, "definitions/*.yaml")
	if err != nil {
		panic(err)
	}
	return defs
}

// LoadDefinitions parses every YAML questionnaire matching pattern in fsys.
func LoadDefinitions(fsys fs.FS, pattern string) (map[string]*Definition, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	defs := make(map[string]*Definition, len(paths))
	for _, path := range paths {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		def, err := ParseDefinition(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, exists := defs[def.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate questionnaire id %q", path, def.ID)
		}
		defs[def.ID] = def
	}
	return defs, nil
}

type definitionSpec struct {
	ID       string            `yaml:"id"`
	Version  int               `yaml:"version"`
	Title    string            `yaml:"title"`
	Labels   map[string]string `yaml:"labels"`
	Statuses []thresholdSpec   `yaml:"statuses"`
	Fallback statusSpec        `yaml:"fallback"`
	Items    []itemSpec        `yaml:"items"`
}

type statusSpec struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

type thresholdSpec struct {
	Min   float64 `yaml:"min"`
	Code  string  `yaml:"code"`
	Label string  `yaml:"label"`
}

type itemSpec struct {
	Key   string   `yaml:"key"`
	Label string   `yaml:"label"`
	Rule  ruleSpec `yaml:"rule"`
}

type ruleSpec struct {
	Kind        string       `yaml:"kind"`
	Answer      string       `yaml:"answer"`
	Answers     []string     `yaml:"answers"`
	Unit        string       `yaml:"unit"`
	Match       string       `yaml:"match"`
	Reject      string       `yaml:"reject"`
	Options     []Option     `yaml:"options"`
	Ladder      []stepSpec   `yaml:"ladder"`
	Breakpoints []Breakpoint `yaml:"breakpoints"`
	Rules       []ruleSpec   `yaml:"rules"`
}

type stepSpec struct {
	Min    int     `yaml:"min"`
	Points float64 `yaml:"points"`
}

// ParseDefinition builds a Definition from its YAML form.
func ParseDefinition(raw []byte) (*Definition, error) {
	var spec definitionSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	if spec.ID == "" {
		return nil, fmt.Errorf("questionnaire id is required")
	}
	if len(spec.Items) == 0 {
		return nil, fmt.Errorf("questionnaire %s has no items", spec.ID)
	}

	def := &Definition{
		ID:       spec.ID,
		Version:  spec.Version,
		Title:    spec.Title,
		Fallback: Status{Code: StatusCode(spec.Fallback.Code), Label: spec.Fallback.Label},
		labels:   spec.Labels,
	}

	for _, status := range spec.Statuses {
		def.Thresholds = append(def.Thresholds, Threshold{
			Min:    status.Min,
			Status: Status{Code: StatusCode(status.Code), Label: status.Label},
		})
	}
	sort.SliceStable(def.Thresholds, func(i, j int) bool {
		return def.Thresholds[i].Min > def.Thresholds[j].Min
	})

	seen := make(map[string]bool)
	for _, item := range spec.Items {
		if item.Key == "" {
			return nil, fmt.Errorf("questionnaire %s has an item without key", spec.ID)
		}
		if seen[item.Key] {
			return nil, fmt.Errorf("questionnaire %s: duplicate item %q", spec.ID, item.Key)
		}
		seen[item.Key] = true

		rule, err := item.Rule.build()
		if err != nil {
			return nil, fmt.Errorf("questionnaire %s, item %s: %w", spec.ID, item.Key, err)
		}
		def.Items = append(def.Items, Item{Key: item.Key, Label: item.Label, Rule: rule})
	}
	return def, nil
}

func (s ruleSpec) build() (Rule, error) {
	switch s.Kind {
	case "lookup":
		if s.Answer == "" || len(s.Options) == 0 {
			return nil, fmt.Errorf("lookup rule needs an answer key and options")
		}
		return LookupRule{Key: s.Answer, Options: s.Options}, nil

	case "count":
		if len(s.Answers) == 0 || s.Match == "" {
			return nil, fmt.Errorf("count rule needs answer keys and a match code")
		}
		ladder := make([]Step, 0, len(s.Ladder))
		for _, step := range s.Ladder {
			ladder = append(ladder, Step{MinCount: step.Min, Points: step.Points})
		}
		sort.SliceStable(ladder, func(i, j int) bool { return ladder[i].MinCount > ladder[j].MinCount })
		return CountRule{AnswerKeys: s.Answers, Match: s.Match, Reject: s.Reject, Ladder: ladder}, nil

	case "threshold":
		if s.Answer == "" || len(s.Breakpoints) == 0 {
			return nil, fmt.Errorf("threshold rule needs an answer key and breakpoints")
		}
		breakpoints := append([]Breakpoint(nil), s.Breakpoints...)
		sort.SliceStable(breakpoints, func(i, j int) bool { return breakpoints[i].Min > breakpoints[j].Min })
		return ThresholdRule{Key: s.Answer, Unit: s.Unit, Breakpoints: breakpoints}, nil

	case "sum":
		if len(s.Rules) == 0 {
			return nil, fmt.Errorf("sum rule needs inner rules")
		}
		rules := make([]Rule, 0, len(s.Rules))
		for _, inner := range s.Rules {
			rule, err := inner.build()
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		return SumRule{Rules: rules}, nil

	default:
		return nil, fmt.Errorf("unknown rule kind %q", s.Kind)
	}
}
