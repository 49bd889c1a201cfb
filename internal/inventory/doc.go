// Package inventory implements the multi-region instance collection engine
// and the dynamic table renderer.
//
// A run is strictly sequential: the Driver walks the configured regions in
// order, the Collector pages through each region's instances, and every
// instance is flattened into a Record whose string values feed the run-wide
// WidthTable. Region failures are isolated (a bad region prints a warning and
// the run continues) while configuration problems abort the run before any
// region is touched.
//
// The WidthTable is the one piece of state shared across regions. Its widths
// only ever grow, and they are never reset between regions, so a table
// rendered for an early region can be narrower than widths discovered later.
package inventory
