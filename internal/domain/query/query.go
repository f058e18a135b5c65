// Package query builds the bracketed query-string dialect of the CMS content
// API from declarative field/relation specifications.
//
// Two rooting conventions are supported. Nested mode serves config-style
// endpoints that aggregate several named components:
//
//	populate[header][fields][0]=title&populate[header][populate][logo][fields][0]=url
//
// Direct mode serves single-resource listings, where the top-level spec is
// rooted at the empty path:
//
//	fields[0]=slug&populate[poi][fields][0]=label
//
// Emission order follows insertion order of relations and the order of
// fields, so output is byte-stable for a given input.
package query

import (
	"net/url"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FieldSpec describes the fields to project for one node and the relations
// to populate beneath it. A spec with neither contributes no parameters.
type FieldSpec struct {
	Fields   []string
	Populate *orderedmap.OrderedMap[string, FieldSpec]
}

// Relation names a FieldSpec, used to build ordered relation sets.
type Relation struct {
	Name string
	Spec FieldSpec
}

// Components maps top-level component names to their specs, in order.
type Components = orderedmap.OrderedMap[string, FieldSpec]

// Rel is shorthand for constructing a Relation.
func Rel(name string, spec FieldSpec) Relation {
	return Relation{Name: name, Spec: spec}
}

// Populate returns an ordered relation set. Later duplicates replace the
// spec of an earlier name but keep its position.
func Populate(relations ...Relation) *orderedmap.OrderedMap[string, FieldSpec] {
	om := orderedmap.New[string, FieldSpec]()
	for _, r := range relations {
		om.Set(r.Name, r.Spec)
	}
	return om
}

// NewComponents returns an ordered component set for BuildNested.
func NewComponents(relations ...Relation) *Components {
	return Populate(relations...)
}

// BuildNested encodes every component under populate[<name>].
func BuildNested(components *Components) string {
	var params []string
	if components == nil {
		return ""
	}
	for pair := components.Oldest(); pair != nil; pair = pair.Next() {
		params = appendSpec(params, bracket("populate", pair.Key), pair.Value)
	}
	return strings.Join(params, "&")
}

// BuildDirect encodes spec rooted at the empty path.
func BuildDirect(spec FieldSpec) string {
	return strings.Join(appendSpec(nil, "", spec), "&")
}

// Pagination encodes the page parameters appended to list endpoints.
func Pagination(page, pageSize int) string {
	return "pagination[page]=" + strconv.Itoa(page) +
		"&pagination[pageSize]=" + strconv.Itoa(pageSize)
}

// Join concatenates non-empty query fragments with '&'.
func Join(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, "&")
}

func appendSpec(params []string, path string, spec FieldSpec) []string {
	for i, field := range spec.Fields {
		key := bracket(extend(path, "fields"), strconv.Itoa(i))
		params = append(params, key+"="+url.QueryEscape(field))
	}
	if spec.Populate == nil {
		return params
	}
	for pair := spec.Populate.Oldest(); pair != nil; pair = pair.Next() {
		params = appendSpec(params, bracket(extend(path, "populate"), pair.Key), pair.Value)
	}
	return params
}

// extend appends seg to path, bracketing it unless path is the root.
func extend(path, seg string) string {
	if path == "" {
		return seg
	}
	return bracket(path, seg)
}

func bracket(path, seg string) string {
	return path + "[" + seg + "]"
}
