// Package suite looks up POIs in fetched CMS collections. Lookups operate on
// the raw JSON array of a collection and never fail: malformed input and
// misses both report "not found".
package suite

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// CategoryRestaurant is the POI type of restaurants.
const CategoryRestaurant = "restaurant"

// FindBySlug returns the poi of the first item whose poi.slug equals slug,
// compared case-insensitively.
func FindBySlug(collection []byte, slug string) (domain.POI, bool) {
	item, ok := matchSlug(collection, slug)
	if !ok {
		return domain.POI{}, false
	}
	var poi domain.POI
	if err := json.Unmarshal([]byte(item.Get("poi").Raw), &poi); err != nil {
		return domain.POI{}, false
	}
	return poi, true
}

// FindGuideItem returns the whole poi-guides item whose poi.slug equals
// slug, compared case-insensitively.
func FindGuideItem(collection []byte, slug string) (domain.POIGuideItem, bool) {
	item, ok := matchSlug(collection, slug)
	if !ok {
		return domain.POIGuideItem{}, false
	}
	var gi domain.POIGuideItem
	if err := json.Unmarshal([]byte(item.Raw), &gi); err != nil {
		return domain.POIGuideItem{}, false
	}
	return gi, true
}

// FilterByCategory returns every POI of a flat collection whose type equals
// category exactly. Malformed collections yield an empty slice.
func FilterByCategory(collection []byte, category string) []domain.POI {
	pois := []domain.POI{}
	items, ok := array(collection)
	if !ok {
		return pois
	}
	for _, item := range items.Array() {
		if item.Get("type").String() != category {
			continue
		}
		var poi domain.POI
		if err := json.Unmarshal([]byte(item.Raw), &poi); err != nil {
			continue
		}
		pois = append(pois, poi)
	}
	return pois
}

// matchSlug finds the first item whose poi.slug matches slug.
func matchSlug(collection []byte, slug string) (gjson.Result, bool) {
	items, ok := array(collection)
	if !ok {
		return gjson.Result{}, false
	}
	want := strings.ToLower(slug)
	for _, item := range items.Array() {
		got := item.Get("poi.slug")
		if got.Type == gjson.String && strings.ToLower(got.String()) == want {
			return item, true
		}
	}
	return gjson.Result{}, false
}

func array(collection []byte) (gjson.Result, bool) {
	if !gjson.ValidBytes(collection) {
		return gjson.Result{}, false
	}
	r := gjson.ParseBytes(collection)
	return r, r.IsArray()
}
