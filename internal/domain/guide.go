package domain

import "encoding/json"

// ImageEntry is one timed image of a legacy stop. Timestamps are kept as
// the source wrote them, number or "mm:ss" string.
type ImageEntry struct {
	URL            string          `json:"url"`
	StartTimestamp json.RawMessage `json:"startTimestamp,omitempty"`
	EndTimestamp   json.RawMessage `json:"endTimestamp,omitempty"`
}

// AdaptedStep is a legacy stop in the current guide schema. The asset maps
// stay keyed by legacy language code until ResolveStepAssets picks one.
// Order is carried from the source and is not guaranteed to match the
// step's position in Guide.Steps.
type AdaptedStep struct {
	ID          FlexString              `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Duration    json.RawMessage         `json:"duration,omitempty"`
	Order       int                     `json:"order"`
	Audio       map[string]string       `json:"audio,omitempty"`
	Subtitle    map[string]string       `json:"subtitle,omitempty"`
	Image       map[string][]ImageEntry `json:"image,omitempty"`
}

// Guide is the current-schema guide body.
type Guide struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []AdaptedStep `json:"steps"`
}

// AdaptedGuide pairs a guide with the POI it belongs to.
type AdaptedGuide struct {
	POI   POI   `json:"poi"`
	Guide Guide `json:"guide"`
}

// ImageAsset is an image with its absolute URL.
type ImageAsset struct {
	URL            string          `json:"url"`
	StartTimestamp json.RawMessage `json:"startTimestamp,omitempty"`
	EndTimestamp   json.RawMessage `json:"endTimestamp,omitempty"`
}

// StepAssets holds the absolute asset URLs of one step for one language.
// A nil AudioURL or SubtitleURL means the step has no asset in that language.
type StepAssets struct {
	AudioURL    *string      `json:"audioUrl"`
	SubtitleURL *string      `json:"subtitleUrl"`
	Images      []ImageAsset `json:"images"`
}

// StepView is a step ready for presentation in one language.
type StepView struct {
	ID          FlexString      `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    json.RawMessage `json:"duration,omitempty"`
	Order       int             `json:"order"`
	Assets      StepAssets      `json:"assets"`
}

// GuideView is the guide-loading result: the adapted guide resolved for a
// single display language plus the languages the tour offers audio in.
type GuideView struct {
	POI                POI        `json:"poi"`
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Language           string     `json:"language"`
	AvailableLanguages []string   `json:"availableLanguages"`
	AssetBaseURL       string     `json:"assetBaseUrl"`
	Steps              []StepView `json:"steps"`
}

// AssetFailure records an asset that could not be preloaded.
type AssetFailure struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// PreloadReport summarizes an offline asset preload of one guide.
type PreloadReport struct {
	Slug       string         `json:"slug"`
	Language   string         `json:"language"`
	Directory  string         `json:"directory"`
	Total      int            `json:"total"`
	Downloaded int            `json:"downloaded"`
	Failed     []AssetFailure `json:"failed"`
}
