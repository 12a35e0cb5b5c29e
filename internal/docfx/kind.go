package docfx

// Kind is the docfx item type.
type Kind string

// Item kinds understood by the generator. Other kinds (Namespace, Operator,
// ...) are parsed but never placed in the documentation tree.
const (
	KindClass       Kind = "Class"
	KindStruct      Kind = "Struct"
	KindInterface   Kind = "Interface"
	KindEnum        Kind = "Enum"
	KindDelegate    Kind = "Delegate"
	KindField       Kind = "Field"
	KindProperty    Kind = "Property"
	KindMethod      Kind = "Method"
	KindConstructor Kind = "Constructor"
	KindEvent       Kind = "Event"
)

// TypeKinds lists the type-level kinds in index order.
var TypeKinds = []Kind{KindClass, KindStruct, KindInterface, KindEnum, KindDelegate}

// IsType reports whether items of this kind get a page of their own.
func (k Kind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum, KindDelegate:
		return true
	default:
		return false
	}
}

// Plural returns the index heading for a type-level kind.
func (k Kind) Plural() string {
	switch k {
	case KindClass:
		return "Classes"
	case KindStruct:
		return "Structs"
	case KindInterface:
		return "Interfaces"
	case KindEnum:
		return "Enums"
	case KindDelegate:
		return "Delegates"
	default:
		return string(k) + "s"
	}
}
