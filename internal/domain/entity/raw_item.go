package entity

// RawItem is a single decoded upstream JSON object. Upstream payloads are heterogeneous
// (field names vary between endpoints and releases), so they are kept untyped until
// they are shaped into view models.
type RawItem map[string]any
