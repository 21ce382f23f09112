package entity

import "strconv"

// TabID uniquely identifies one browsing context. IDs are totally ordered
// in creation order and carry no resources, so they may be copied freely.
type TabID int

// TabIDNone is the reserved "no tab" value.
const TabIDNone TabID = -1

// Valid reports whether the ID refers to an actual tab.
func (id TabID) Valid() bool {
	return id != TabIDNone
}

func (id TabID) String() string {
	return strconv.Itoa(int(id))
}

// TabOrigin records where a tab came from. Tabs opened by the engine via a
// new-window request inherit the requesting tab's ID as their origin.
type TabOrigin int

const (
	TabOriginUnknown TabOrigin = -1
	TabOriginHome    TabOrigin = 0
)

// TabContent is the read-only summary of a tab the tab switcher consumes.
type TabContent struct {
	ID        TabID
	URI       string
	Title     string
	Origin    TabOrigin
	Thumbnail Image
	Favicon   Image
	Private   bool
}
