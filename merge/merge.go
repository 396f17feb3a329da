package merge

import (
	"github.com/beevik/etree"
)

// Stats summarizes one merge.
type Stats struct {
	// Primary is the number of primary name elements visited.
	Primary int

	// Matched is the number of primary records that received secondary data.
	Matched int

	// Unmatched is the number of secondary records no primary record matched.
	// Their data is not part of the result.
	Unmatched int
}

// Merge returns a copy of primary in which every record whose normalized
// name equals the name of a secondary record also carries copies of that
// secondary record's children, except its name element.
//
// primaryPath and secondaryPath are etree paths selecting the name elements
// (for example "//Station/StationName" and "//station/name"); the record is
// the name element's parent. For each primary name the secondary names are
// scanned in document order and the first match wins. A primary record with
// no match is left unchanged. Neither input document is modified.
func Merge(primary *etree.Document, primaryPath string, secondary *etree.Document, secondaryPath string) (*etree.Document, Stats) {
	var stats Stats
	result := primary.Copy()

	secondaryNames := secondary.FindElements(secondaryPath)
	keys := make([]string, len(secondaryNames))
	for i, el := range secondaryNames {
		keys[i] = Normalize(el.Text())
	}
	used := make([]bool, len(secondaryNames))

	for _, nameEl := range result.FindElements(primaryPath) {
		stats.Primary++
		key := Normalize(nameEl.Text())
		if key == "" {
			continue
		}
		for i, other := range keys {
			if other != key {
				continue
			}
			appendRecord(nameEl.Parent(), secondaryNames[i])
			used[i] = true
			stats.Matched++
			break
		}
	}

	for _, u := range used {
		if !u {
			stats.Unmatched++
		}
	}
	return result, stats
}

// appendRecord copies the siblings of name (excluding name elements) onto dst.
func appendRecord(dst *etree.Element, name *etree.Element) {
	record := name.Parent()
	if dst == nil || record == nil {
		return
	}
	for _, child := range record.ChildElements() {
		if child.Tag == name.Tag {
			continue
		}
		dst.AddChild(child.Copy())
	}
}
