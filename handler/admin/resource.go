package admin

import "github.com/Matias-sh/mi-portafolio/handler"

const (
	KindString   = "string"
	KindText     = "text"
	KindBool     = "bool"
	KindInt      = "int"
	KindDate     = "date"
	KindDateTime = "datetime"
	KindRelation = "relation"
	KindTags     = "tags"
)

// TagIDsField carries the tag membership of a write-up on create and update.
const TagIDsField = "tag_ids"

// Field describes one JSON attribute of a resource. Rules use the validator
// tag syntax and run against the merged record before it is written.
type Field struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Rules     string `json:"rules,omitempty"`
	ReadOnly  bool   `json:"read_only,omitempty"`
	Immutable bool   `json:"immutable,omitempty"`
	// Derived fields may be omitted on create; a model hook fills them in.
	Derived bool `json:"derived,omitempty"`
}

type Filter struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Action is a named bulk update that sets Column to Value.
type Action struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Column string `json:"-"`
	Value  any    `json:"-"`
}

type Resource struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Fields   []Field  `json:"fields"`
	Search   []string `json:"search"`
	Filters  []Filter `json:"filters"`
	Ordering []string `json:"ordering"`
	Actions  []Action `json:"actions"`
	Tags     bool     `json:"tags,omitempty"`

	Preloads []string `json:"-"`
	// Invalidates lists the cache keys dropped after any write.
	Invalidates []string `json:"-"`
	// New returns a pointer to a model carrying its defaults.
	New func() any `json:"-"`
	// NewList returns a pointer to an empty slice of the model.
	NewList func() any `json:"-"`
}

func (r Resource) Field(name string) (Field, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

// Writable reports whether the field accepts input on create (creating) or
// on update.
func (f Field) Writable(creating bool) bool {
	if f.ReadOnly {
		return false
	}

	if f.Immutable {
		return creating
	}

	return true
}

func (r Resource) Action(name string) (Action, bool) {
	for _, action := range r.Actions {
		if action.Name == name {
			return action, true
		}
	}

	return Action{}, false
}

func (r Resource) Filter(name string) (Filter, bool) {
	for _, filter := range r.Filters {
		if filter.Name == name {
			return filter, true
		}
	}

	return Filter{}, false
}

func readOnly(name, kind string) Field {
	return Field{Name: name, Kind: kind, ReadOnly: true}
}

func field(name, kind, rules string) Field {
	return Field{Name: name, Kind: kind, Rules: rules}
}

var timestamps = []Field{
	readOnly("id", KindInt),
	readOnly("created_at", KindDateTime),
}

var writeUpCaches = []string{handler.CategoriesCacheKey, handler.TagsCacheKey}
