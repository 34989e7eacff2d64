package types

// EditInfo describes a buffer mutation for listeners that maintain
// line-keyed caches (layout, highlights). Everything at or after FromLine
// may have moved or changed.
type EditInfo struct {
	FromLine int
}
