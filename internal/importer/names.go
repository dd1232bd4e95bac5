package importer

import (
	"go/token"
	"unicode"
)

// reservedNames are identifiers a generated local variable must not shadow.
var reservedNames = map[string]bool{
	"stk": true, "stack": true, "databrew": true, "mediapackage": true, "lambda": true,
	"any": true, "bool": true, "byte": true, "error": true, "float64": true, "int": true,
	"string": true, "nil": true, "true": true, "false": true, "len": true, "append": true,
	"make": true, "new": true,
}

// goFieldName returns the struct field generated for a CloudFormation
// property, e.g. "ingestEndpoints" -> "IngestEndpoints", "Type" -> "Type_".
func goFieldName(name string) string {
	field := upperFirst(name)
	switch field {
	case "Type", "ResourceType", "Validate":
		field += "_"
	}
	return field
}

// attributeFieldName returns the AttrRef field generated for a GetAtt
// attribute.
func attributeFieldName(attr string) string {
	return upperFirst(attr)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// varName derives a lowerCamel local variable from a logical ID, lowering
// a leading acronym as a whole: "VPCEndpoint" -> "vpcEndpoint",
// "LiveHls" -> "liveHls".
func varName(logicalID string) string {
	var clean []rune
	for _, r := range logicalID {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	if len(clean) == 0 {
		return "res"
	}
	if unicode.IsDigit(clean[0]) {
		clean = append([]rune{'r'}, clean...)
	}

	upper := 0
	for upper < len(clean) && unicode.IsUpper(clean[upper]) {
		upper++
	}
	if upper > 1 && upper < len(clean) {
		// The last capital starts the next word.
		upper--
	}
	for i := 0; i < upper; i++ {
		clean[i] = unicode.ToLower(clean[i])
	}

	name := string(clean)
	if token.IsKeyword(name) {
		name += "Res"
	}
	return name
}
