// Package ports holds the interfaces that join the layers of the pipeline.
//
// GuideService is served by the application layer to the HTTP handlers.
// ContentFetcher, ContentStore, ManifestWriter and LegacyTourClient are
// implemented by the CMS client, the mock store and the legacy asset store
// client, and are consumed by the ingestion, guide and preload services.
package ports
