package legacy

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// Document is a legacy tour: index metadata plus the ordered stop list.
type Document struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	POIList     []Stop `json:"poiList"`
}

// Stop is one legacy tour stop. Asset maps are keyed by legacy language
// code and hold paths relative to the tour's asset base URL.
type Stop struct {
	ID          domain.FlexString              `json:"id"`
	Title       string                         `json:"title"`
	Description string                         `json:"description"`
	Duration    json.RawMessage                `json:"duration,omitempty"`
	Order       domain.FlexInt                 `json:"order,omitempty"`
	Audio       map[string]string              `json:"audio,omitempty"`
	Subtitle    map[string]string              `json:"subtitle,omitempty"`
	Image       map[string][]domain.ImageEntry `json:"image,omitempty"`
}

// Validate reports whether raw is a JSON object whose poiList is an array.
// An empty poiList is valid.
func Validate(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	doc := gjson.ParseBytes(raw)
	return doc.IsObject() && doc.Get("poiList").IsArray()
}

// Decode validates raw and decodes it into a Document. Any failure wraps
// domain.ErrInvalidLegacyDocument.
func Decode(raw []byte) (*Document, error) {
	if !Validate(raw) {
		return nil, fmt.Errorf("poiList missing or not an array: %w", domain.ErrInvalidLegacyDocument)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidLegacyDocument, err)
	}
	if doc.POIList == nil {
		doc.POIList = []Stop{}
	}
	return &doc, nil
}

// Merge combines a tour's index.json and content.json: every index field
// plus the content's poiList. A content document without poiList leaves
// the index as is, which Validate then rejects.
func Merge(index, content []byte) ([]byte, error) {
	if !gjson.ValidBytes(index) || !gjson.ParseBytes(index).IsObject() {
		return nil, fmt.Errorf("index is not a JSON object: %w", domain.ErrInvalidLegacyDocument)
	}
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("content is not valid JSON: %w", domain.ErrInvalidLegacyDocument)
	}
	poiList := gjson.GetBytes(content, "poiList")
	if !poiList.Exists() {
		return index, nil
	}
	merged, err := sjson.SetRawBytes(index, "poiList", []byte(poiList.Raw))
	if err != nil {
		return nil, fmt.Errorf("merging poiList: %w", err)
	}
	return merged, nil
}

// Adapt reshapes a decoded legacy document into the current guide schema.
// doc must come from Decode; an undecoded document is rejected with
// domain.ErrInvalidLegacyDocument instead of producing a partial guide.
func Adapt(doc *Document, cfg TourConfig) (*domain.AdaptedGuide, error) {
	if doc == nil || doc.POIList == nil {
		return nil, fmt.Errorf("adapting tour %q: %w", cfg.TourID, domain.ErrInvalidLegacyDocument)
	}

	title := doc.Title
	if title == "" {
		title = audioGuidePrefix + cfg.POI.Label
	}

	steps := make([]domain.AdaptedStep, len(doc.POIList))
	for i, s := range doc.POIList {
		steps[i] = domain.AdaptedStep{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Duration:    s.Duration,
			Order:       int(s.Order),
			Audio:       s.Audio,
			Subtitle:    s.Subtitle,
			Image:       s.Image,
		}
	}

	return &domain.AdaptedGuide{
		POI: cfg.POI,
		Guide: domain.Guide{
			ID:          cfg.TourID,
			Title:       title,
			Description: doc.Description,
			Steps:       steps,
		},
	}, nil
}

// ResolveStepAssets resolves the step's assets for a display language into
// absolute URLs under assetBaseURL. Missing audio or subtitles yield nil;
// missing images yield an empty slice.
func ResolveStepAssets(step domain.AdaptedStep, language, assetBaseURL string) domain.StepAssets {
	code := domain.LegacyCode(language)

	assets := domain.StepAssets{
		AudioURL:    resolvePath(step.Audio, code, assetBaseURL),
		SubtitleURL: resolvePath(step.Subtitle, code, assetBaseURL),
		Images:      []domain.ImageAsset{},
	}
	for _, img := range step.Image[code] {
		assets.Images = append(assets.Images, domain.ImageAsset{
			URL:            assetBaseURL + img.URL,
			StartTimestamp: img.StartTimestamp,
			EndTimestamp:   img.EndTimestamp,
		})
	}
	return assets
}

func resolvePath(paths map[string]string, code, base string) *string {
	p, ok := paths[code]
	if !ok || p == "" {
		return nil
	}
	u := base + p
	return &u
}

// DiscoverAvailableLanguages returns the display codes of every language
// with audio on at least one stop. The result is sorted but callers should
// treat it as a set.
func DiscoverAvailableLanguages(doc *Document) []string {
	if doc == nil {
		return []string{}
	}
	seen := make(map[string]struct{})
	for _, s := range doc.POIList {
		for code := range s.Audio {
			seen[domain.DisplayCode(code)] = struct{}{}
		}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}
