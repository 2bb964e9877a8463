package rdf

// ExpandValue implements the Value Expansion Algorithm: it turns a
// scalar encountered as the value of activeProperty into a value
// object or node reference, consulting activeProperty's term
// definition for a type or language mapping. The five cases are tried
// in order: @id type mapping, @vocab type mapping, any other type
// mapping, a string with a language mapping or context default
// language, and finally a bare value object.
func ExpandValue(ctx ActiveContext, activeProperty string, value interface{}) (interface{}, error) {
	def := ctx.TermDefs[activeProperty]

	switch def.TypeMapping {
	case "@id":
		if s, ok := value.(string); ok {
			expanded, _ := ExpandIRI(s, ctx, true, false)
			return map[string]interface{}{"@id": expanded}, nil
		}
	case "@vocab":
		if s, ok := value.(string); ok {
			expanded, _ := ExpandIRI(s, ctx, true, true)
			return map[string]interface{}{"@id": expanded}, nil
		}
	case "":
		// No type mapping: fall through to the string/default cases below.
	default:
		return map[string]interface{}{"@value": value, "@type": def.TypeMapping}, nil
	}

	if s, ok := value.(string); ok {
		if tag, explicit := def.LanguageMapping.Tag(); explicit {
			return map[string]interface{}{"@value": s, "@language": tag}, nil
		}
		if def.LanguageMapping.IsNone() {
			return map[string]interface{}{"@value": s}, nil
		}
		if ctx.HasDefaultLanguage {
			return map[string]interface{}{"@value": s, "@language": ctx.DefaultLanguage}, nil
		}
		return map[string]interface{}{"@value": s}, nil
	}

	return map[string]interface{}{"@value": value}, nil
}
