package query

import "strings"

// Field identifies a searchable card attribute addressed by a directive.
type Field int

// Directive fields.
const (
	FieldUnknown Field = iota
	FieldName
	FieldCost
	FieldType
	FieldRarity
	FieldElement
	FieldKeyword
	FieldArtist
	FieldDescription
	FieldSet
	FieldFlavor
	FieldStrength
	FieldPrice
)

// aliases maps every accepted key spelling to its field.
var aliases = map[string]Field{
	"name":        FieldName,
	"n":           FieldName,
	"cost":        FieldCost,
	"c":           FieldCost,
	"type":        FieldType,
	"t":           FieldType,
	"rarity":      FieldRarity,
	"r":           FieldRarity,
	"element":     FieldElement,
	"e":           FieldElement,
	"keyword":     FieldKeyword,
	"k":           FieldKeyword,
	"artist":      FieldArtist,
	"a":           FieldArtist,
	"description": FieldDescription,
	"desc":        FieldDescription,
	"d":           FieldDescription,
	"set":         FieldSet,
	"s":           FieldSet,
	"flavor":      FieldFlavor,
	"f":           FieldFlavor,
	"strength":    FieldStrength,
	"str":         FieldStrength,
	"price":       FieldPrice,
	"p":           FieldPrice,
}

var canonicalNames = map[Field]string{
	FieldName:        "name",
	FieldCost:        "cost",
	FieldType:        "type",
	FieldRarity:      "rarity",
	FieldElement:     "element",
	FieldKeyword:     "keyword",
	FieldArtist:      "artist",
	FieldDescription: "description",
	FieldSet:         "set",
	FieldFlavor:      "flavor",
	FieldStrength:    "strength",
	FieldPrice:       "price",
}

// directiveOrder is the order fields are offered as completions.
var directiveOrder = []Field{
	FieldName, FieldCost, FieldType, FieldRarity, FieldElement, FieldKeyword,
	FieldArtist, FieldDescription, FieldSet, FieldFlavor, FieldStrength, FieldPrice,
}

// LookupField resolves a directive key (case-insensitive).
func LookupField(key string) (Field, bool) {
	f, ok := aliases[strings.ToLower(key)]
	return f, ok
}

// Fields returns every directive field in completion order.
func Fields() []Field {
	return append([]Field(nil), directiveOrder...)
}

// String returns the canonical key of the field.
func (f Field) String() string {
	if n, ok := canonicalNames[f]; ok {
		return n
	}
	return "unknown"
}

// IsNumeric reports whether the field takes a comparison operator.
func (f Field) IsNumeric() bool {
	return f == FieldCost || f == FieldStrength || f == FieldPrice
}
