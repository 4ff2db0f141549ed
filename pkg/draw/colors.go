package draw

import (
	"gamernet/pkg/bipartite"
	"gamernet/pkg/dataset"
)

// Canvas and edge colors, matched to a dark terminal palette.
const (
	BackgroundColor = "#282a36"
	EdgeColor       = "#f8f8f2"

	// fallback for entities outside every category table
	defaultColor = "#8b4513"
	// authors active in more than one subreddit
	multipleColor = "#ffb86c"
)

var groupColors = map[dataset.Group]string{
	dataset.GroupGames:   "#50fa7b",
	dataset.GroupSystems: "#ff79c6",
	dataset.GroupGeneral: "#8be9fd",
}

var platformColors = map[dataset.Platform]string{
	dataset.PlatformSony:     "#0112fe",
	dataset.PlatformXbox:     "#107c10",
	dataset.PlatformNintendo: "#e60012",
	dataset.PlatformPC:       "#bd93f9",
	dataset.PlatformMulti:    "#ffb86c",
}

// GroupColor returns the hex color for a subreddit group.
func GroupColor(g dataset.Group) string {
	if c, ok := groupColors[g]; ok {
		return c
	}
	return defaultColor
}

// PlatformColor returns the hex color for a subreddit platform.
func PlatformColor(p dataset.Platform) string {
	if c, ok := platformColors[p]; ok {
		return c
	}
	return defaultColor
}

// ColorBy names the attribute driving node colors.
type ColorBy string

const (
	ColorByGroup    ColorBy = "group"
	ColorByPlatform ColorBy = "platform"
)

// NodeColors assigns a hex color to every projected entity. Subreddits take
// their own category's color. Authors take the color of their single
// subreddit's category, or a separate color when they post in several.
func NodeColors(records []dataset.Record, side bipartite.Side, by ColorBy) map[string]string {
	colorOf := func(sub string) string {
		if by == ColorByPlatform {
			return PlatformColor(dataset.PlatformOf(sub))
		}
		return GroupColor(dataset.GroupOf(sub))
	}

	colors := make(map[string]string)
	if side == bipartite.SideSubreddit {
		for _, r := range records {
			colors[r.Subreddit] = colorOf(r.Subreddit)
		}
		return colors
	}

	authorSubs := make(map[string]map[string]bool)
	for _, r := range records {
		subs := authorSubs[r.Author]
		if subs == nil {
			subs = make(map[string]bool)
			authorSubs[r.Author] = subs
		}
		subs[r.Subreddit] = true
	}
	for author, subs := range authorSubs {
		if len(subs) > 1 {
			colors[author] = multipleColor
			continue
		}
		for sub := range subs {
			colors[author] = colorOf(sub)
		}
	}
	return colors
}
