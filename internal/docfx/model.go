package docfx

import "gopkg.in/yaml.v3"

// Well-known uids consulted by the generator.
const (
	ObsoleteAttributeUID = "System.ObsoleteAttribute"
	StringTypeUID        = "System.String"
	BooleanTypeUID       = "System.Boolean"
)

// Document is the content of a single metadata file.
type Document struct {
	Items      []Item      `yaml:"items"`
	References []Reference `yaml:"references"`
}

// Item is one documented entity: a type or one of its members.
type Item struct {
	UID         string      `yaml:"uid"`
	Parent      string      `yaml:"parent"`
	Name        string      `yaml:"name"`
	FullName    string      `yaml:"fullName"`
	Type        Kind        `yaml:"type"`
	Namespace   string      `yaml:"namespace"`
	Assemblies  []string    `yaml:"assemblies"`
	Summary     string      `yaml:"summary"`
	Remarks     string      `yaml:"remarks"`
	Syntax      *Syntax     `yaml:"syntax"`
	Inheritance []string    `yaml:"inheritance"`
	Implements  []string    `yaml:"implements"`
	Exceptions  []Exception `yaml:"exceptions"`
	Attributes  []Attribute `yaml:"attributes"`
}

// Syntax describes the declaration of an item.
type Syntax struct {
	Content        string          `yaml:"content"`
	Parameters     []Parameter     `yaml:"parameters"`
	Return         *Return         `yaml:"return"`
	TypeParameters []TypeParameter `yaml:"typeParameters"`
}

// UnmarshalYAML accepts both the "return" key docfx writes and the
// "returns" spelling some tools emit.
func (s *Syntax) UnmarshalYAML(node *yaml.Node) error {
	type plain Syntax
	var raw struct {
		plain   `yaml:",inline"`
		Returns *Return `yaml:"returns"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = Syntax(raw.plain)
	if s.Return == nil {
		s.Return = raw.Returns
	}
	return nil
}

// Parameter is a method, constructor, or delegate parameter.
type Parameter struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Return is the declared return (or event handler) type.
type Return struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// TypeParameter is a generic type parameter.
type TypeParameter struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

// Exception is a documented exception a member may throw.
type Exception struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Attribute is a custom attribute applied to an item.
type Attribute struct {
	Type      string     `yaml:"type"`
	Arguments []Argument `yaml:"arguments"`
}

// Argument is a positional attribute argument tagged with its type uid.
// Value holds scalar arguments only; array and object values are left empty.
type Argument struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// UnmarshalYAML keeps a non-scalar value from failing the whole document.
func (a *Argument) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type  string    `yaml:"type"`
		Value yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	a.Type = raw.Type
	a.Value = ""
	if raw.Value.Kind == yaml.ScalarNode {
		a.Value = raw.Value.Value
	}
	return nil
}

// FirstArgument returns the first argument whose type uid equals typeUID.
func (a Attribute) FirstArgument(typeUID string) (Argument, bool) {
	for _, arg := range a.Arguments {
		if arg.Type == typeUID {
			return arg, true
		}
	}
	return Argument{}, false
}

// Reference maps a uid to a display name and an optional link.
// Href is empty for nameable but unlinkable references.
type Reference struct {
	UID  string `yaml:"uid"`
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}
