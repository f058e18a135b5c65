// Package domain contains the shared value types of the guide content
// pipeline: sentinel errors, the display/legacy language tables, POI
// references, fetch outcomes, and the adapted guide view model.
//
// Component logic lives in sub-packages: domain/query builds CMS query
// strings, domain/legacy resolves and adapts legacy tour data, and
// domain/suite looks up POIs in fetched collections.
package domain
