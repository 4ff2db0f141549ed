package dataset

import "time"

// Group classifies a subreddit as a game, a system/hardware community, or a
// general gaming community.
type Group string

const (
	GroupNone    Group = ""
	GroupGames   Group = "VGames" // avoids clashes with the Games subreddit
	GroupSystems Group = "Systems"
	GroupGeneral Group = "General"
)

// Platform associates a subreddit with the company or platform it is most
// reasonably tied to.
type Platform string

const (
	PlatformNone     Platform = ""
	PlatformSony     Platform = "Sony"
	PlatformXbox     Platform = "Xbox"
	PlatformNintendo Platform = "Nintendo"
	PlatformPC       Platform = "PC"
	PlatformMulti    Platform = "Multi"
)

// Record is one observed interaction: an author posting or commenting in a
// subreddit. Records are immutable once loaded.
type Record struct {
	Author    string
	Subreddit string
	Created   time.Time
	Permalink string

	Group    Group
	Platform Platform
}
