// Package mcache provides a lazily-populated, concurrency-safe cache of
// parsed phone number metadata.
//
// MetadataCache maps a geographic region code, or a non-geographic country
// calling code, to the parsed numbering plan for that key. Metadata lives in
// externally-supplied binary resources, one resource per key, fetched
// through a pluggable resource.Loader. The cache owns the loading,
// deduplication under race, and deserialization discipline around those
// resources; it does not validate or format phone numbers itself.
//
// ## Lazy Loading
//
// A key's resource is loaded the first time the key is looked up, and the
// parsed record is cached for the lifetime of the cache. There is no
// eviction, expiry, or reload: numbering plan metadata only changes with a
// new deployment of the resources. Long-running services that know which
// regions they serve can use Preload to warm the cache up front.
//
// ## Concurrency
//
// Lookups never hold a lock while loading or decoding a resource. Each
// caller that misses loads and decodes independently, and synchronizes only
// at the final insert, which is an atomic insert-if-absent. Concurrent first
// lookups of the same key may each parse the resource, but only the first
// record stored becomes visible; the losers discard their copy and return
// the winner's record. Callers therefore never observe two different records
// for the same key.
//
// ## Errors
//
// A missing, empty, or undecodable resource is a deployment defect and is
// reported with MissingResourceError, EmptyResourceError, or
// CorruptResourceError. A resource containing more than one record is logged
// as malformed and its first record is used.
package mcache
