package dataset

// Subreddit category tables for the 2020 gamer dataset. Subreddits outside
// these tables keep empty categories; they still participate in the graph.

var gameSubs = []string{
	"DarkSouls2", "KingdomHearts", "darksouls", "fireemblem",
	"MonsterHunter", "Doom", "bloodborne", "DevilMayCry",
	"darksouls3", "pokemon", "halo", "yakuzagames",
	"Fallout", "DestinyTheGame", "metalgearsolid", "skyrim",
	"MonsterHunterWorld", "demonssouls", "wow", "Minecraft",
	"Overwatch", "GlobalOffensive", "leagueoflegends",
	"zelda", "AnimalCrossing", "witcher", "PUBATTLEGROUNDS",
	"SEGA", "smashbros", "rocketleague", "FallGuysGame",
	"StardewValley",
}

var sysSubs = []string{
	"psx", "PS3", "ps2", "pcmasterrace", "nintendo",
	"xboxone", "pcgaming", "PS4", "Steam", "buildapc",
	"NintendoSwitch", "PS5", "XboxSeriesX", "3DS", "Xbox",
	"Xbox360",
}

var genSubs = []string{
	"JRPG", "gamedesign", "linux_gaming", "otomegames",
	"boardgames", "emulation", "Games", "gaming", "GamePhysics",
	"rpg", "truegaming", "ShouldIbuythisgame", "FreeGamesOnSteam",
	"IndieGaming",
}

// The Yakuza games are being ported to PC, but they stay under Sony here;
// that matches how the data was collected.
var sonySubs = []string{
	"psx", "ps2", "PS3", "PS4", "PS5", "bloodborne",
	"demonssouls", "KingdomHearts", "yakuzagames",
}

// Halo's Master Chief Collection hit PC in 2019 but stays under Xbox.
var xboxSubs = []string{
	"Xbox", "Xbox360", "xboxone", "XboxSeriesX", "halo",
}

var nintendoSubs = []string{
	"nintendo", "NintendoSwitch", "3DS", "fireemblem",
	"pokemon", "AnimalCrossing", "smashbros", "zelda",
}

var pcSubs = []string{
	"wow", "leagueoflegends", "GlobalOffensive", "Minecraft",
	"Overwatch", "linux_gaming", "emulation", "Steam",
	"buildapc", "pcmasterrace", "FreeGamesOnSteam",
}

var multiSubs = []string{
	"DarkSouls2", "darksouls", "MonsterHunter", "Fallout",
	"DestinyTheGame", "skyrim", "metalgearsolid", "witcher",
	"PUBATTLEGROUNDS", "SEGA", "rocketleague", "FallGuysGame",
	"StardewValley", "otomegames",
}

var (
	groupTable    map[string]Group
	platformTable map[string]Platform
)

func init() {
	groupTable = make(map[string]Group)
	for _, s := range gameSubs {
		groupTable[s] = GroupGames
	}
	for _, s := range sysSubs {
		groupTable[s] = GroupSystems
	}
	for _, s := range genSubs {
		groupTable[s] = GroupGeneral
	}

	platformTable = make(map[string]Platform)
	for _, s := range sonySubs {
		platformTable[s] = PlatformSony
	}
	for _, s := range xboxSubs {
		platformTable[s] = PlatformXbox
	}
	for _, s := range nintendoSubs {
		platformTable[s] = PlatformNintendo
	}
	for _, s := range pcSubs {
		platformTable[s] = PlatformPC
	}
	for _, s := range multiSubs {
		platformTable[s] = PlatformMulti
	}
}

// GroupOf returns the group classification for a subreddit.
func GroupOf(subreddit string) Group {
	return groupTable[subreddit]
}

// PlatformOf returns the platform classification for a subreddit.
func PlatformOf(subreddit string) Platform {
	return platformTable[subreddit]
}
