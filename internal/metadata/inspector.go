package metadata

import (
	"reflect"
	"strings"
	"unicode"

	"recyclehub/internal/core/types"
)

var amountType = reflect.TypeOf(types.Amount{})

// Inspect analyzes a draft struct and returns its EntityDef.
// Field rules come from the json, validate and ref struct tags.
func Inspect(entity any, name string, entityType EntityType) EntityDef {
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if name == "" {
		name = t.Name()
	}

	def := EntityDef{
		Name:   name,
		Label:  guessLabel(name),
		Type:   entityType,
		Fields: make([]FieldDef, 0),
	}

	inspectStruct(t, &def)

	return def
}

func inspectStruct(t reflect.Type, def *EntityDef) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.PkgPath != "" { // unexported
			continue
		}

		// Handle embedded structs (flattening)
		if field.Anonymous && field.Type.Kind() == reflect.Struct && field.Type != amountType {
			inspectStruct(field.Type, def)
			continue
		}

		fDef := FieldDef{
			Name:  jsonName(field),
			Label: guessLabel(field.Name),
		}
		if fDef.Name == "-" {
			continue
		}

		mapFieldType(&fDef, field)
		applyRules(&fDef, field)

		def.Fields = append(def.Fields, fDef)
	}
}

func mapFieldType(def *FieldDef, field reflect.StructField) {
	t := field.Type

	if t == amountType {
		def.Type = TypeAmount
		def.Scale = 2
		if strings.Contains(field.Name, "Weight") {
			def.Scale = 3
		}
		return
	}

	switch t.Kind() {
	case reflect.String:
		def.Type = TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		def.Type = TypeInteger
	case reflect.Float32, reflect.Float64:
		def.Type = TypeNumber
		def.Scale = 2
	case reflect.Bool:
		def.Type = TypeBoolean
	default:
		def.Type = TypeString // fallback
	}
}

// applyRules refines the field from its validate tag. Order matters: an id
// is a reference even though its wire type is a numeric string.
func applyRules(def *FieldDef, field reflect.StructField) {
	tag := field.Tag.Get("validate")
	for _, rule := range strings.Split(tag, ",") {
		key, param, _ := strings.Cut(rule, "=")
		switch key {
		case "required":
			def.Required = true
		case "email":
			def.Format = "email"
		case "oneof":
			def.Type = TypeEnum
			def.Options = strings.Fields(param)
		case "datetime":
			switch param {
			case "2006-01-02":
				def.Type = TypeDate
			case "15:04":
				def.Type = TypeTime
			}
		}
	}

	if strings.HasSuffix(field.Name, "ID") {
		def.Type = TypeReference
		def.ReferenceType = referenceType(field)
	}
}

// referenceType names the referenced entity route. The ref tag wins over the
// "SupplierID" -> "suppliers" heuristic.
func referenceType(field reflect.StructField) string {
	if ref, ok := field.Tag.Lookup("ref"); ok {
		return ref
	}
	return strings.ToLower(strings.TrimSuffix(field.Name, "ID")) + "s"
}

func jsonName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	// Fallback: camelCase
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// guessLabel splits CamelCase and kebab-case into words: "MaterialType" -> "Material type".
func guessLabel(name string) string {
	name = strings.TrimSuffix(name, "ID")
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
			continue
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
			continue
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
