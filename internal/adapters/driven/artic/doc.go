// Package artic implements the ArtworkSource driven port against an
// Art Institute of Chicago style catalogue API.
//
// The API serves pages of artwork records under /artworks with
// page/limit query parameters and returns collection-wide pagination
// metadata alongside each page. The client performs exactly one
// outbound request per FetchPage call and never retries; failures are
// surfaced as *domain.NetworkError carrying the requested page number.
package artic
