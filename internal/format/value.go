// Package format turns Azure DevOps API response objects into deterministic
// markdown. Formatters are pure: they never call the API, and they tolerate
// partially populated inputs by omitting absent fields rather than
// fabricating values.
package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/webapi"
)

// Kind tags a normalized field value.
type Kind int

const (
	// Absent means the field carried no value.
	Absent Kind = iota
	// Scalar is any plain value rendered as a string.
	Scalar
	// Person is an identity reference with a display name and, possibly,
	// a unique name.
	Person
)

// Value is the closed variant produced by Normalize. Formatters branch on
// Kind instead of probing response shapes at every call site.
type Value struct {
	Kind        Kind
	Raw         string
	DisplayName string
	UniqueName  string
}

// Normalize converts one raw field value into a Value. Person references
// arrive either as a decoded JSON mapping with displayName/uniqueName keys
// or as a typed IdentityRef; anything else is a scalar.
func Normalize(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Value{Kind: Absent}
	case map[string]interface{}:
		if dn, ok := val["displayName"]; ok {
			person := Value{Kind: Person, DisplayName: fmt.Sprintf("%v", dn)}
			if un, ok := val["uniqueName"]; ok && un != nil {
				person.UniqueName = fmt.Sprintf("%v", un)
			}
			return person
		}
		return Value{Kind: Scalar, Raw: joinMap(val)}
	case *webapi.IdentityRef:
		if val == nil {
			return Value{Kind: Absent}
		}
		return identityValue(val)
	case webapi.IdentityRef:
		return identityValue(&val)
	case string:
		if val == "" {
			return Value{Kind: Absent}
		}
		return Value{Kind: Scalar, Raw: val}
	default:
		return Value{Kind: Scalar, Raw: fmt.Sprintf("%v", val)}
	}
}

func identityValue(ref *webapi.IdentityRef) Value {
	person := Value{Kind: Person}
	if ref.DisplayName != nil {
		person.DisplayName = *ref.DisplayName
	}
	if ref.UniqueName != nil {
		person.UniqueName = *ref.UniqueName
	}
	if person.DisplayName == "" && person.UniqueName == "" {
		return Value{Kind: Absent}
	}
	return person
}

// String renders the value. Person references render as
// "Display Name (unique@name)", falling back to the display name alone and
// finally to the raw representation.
func (v Value) String() string {
	switch v.Kind {
	case Absent:
		return ""
	case Person:
		if v.DisplayName != "" && v.UniqueName != "" {
			return fmt.Sprintf("%s (%s)", v.DisplayName, v.UniqueName)
		}
		if v.DisplayName != "" {
			return v.DisplayName
		}
		return v.UniqueName
	default:
		return v.Raw
	}
}

// joinMap renders a generic mapping as "key: value" pairs, sorted by key so
// output stays deterministic.
func joinMap(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

// Timestamp renders an API time value, or "" when absent.
func Timestamp(t *azuredevops.Time) string {
	if t == nil || t.Time.IsZero() {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}
