package collector

// TrackedGenres is the curated set of SteamSpy tags swept by the genre
// trends collector. Curation leans toward the indie segments the portfolio
// competes in rather than Steam's full tag vocabulary.
var TrackedGenres = []string{
	"Indie",
	"Action",
	"Adventure",
	"RPG",
	"Strategy",
	"Simulation",
	"Casual",
	"Puzzle",
	"Roguelike",
	"Roguelite",
	"Metroidvania",
	"Souls-like",
	"Deck Building",
	"Auto Battler",
	"Bullet Hell",
	"Survival",
	"Horror",
	"Cozy",
	"Farming Sim",
	"City Builder",
	"Colony Sim",
	"Tower Defense",
	"Platformer",
	"Turn-Based Tactics",
	"JRPG",
	"Action RPG",
	"Hack and Slash",
	"Beat 'em up",
	"Pixel Graphics",
	"Retro",
	"Hand-Drawn",
	"Anime",
	"Co-op",
	"Local Co-Op",
	"Online Co-Op",
	"PvP",
	"Sci-fi",
	"Fantasy",
	"Post-apocalyptic",
	"Cyberpunk",
	"Lovecraftian",
}

// TagPair is an ordered pair of tags whose co-occurrence is analyzed daily
type TagPair struct {
	A string
	B string
}

// TagPairs is the curated catalogue of tag combinations with known market
// interest. Pair order is preserved in storage.
var TagPairs = []TagPair{
	{"Roguelike", "Deck Building"},
	{"Roguelike", "Action"},
	{"Roguelike", "Bullet Hell"},
	{"Roguelite", "Platformer"},
	{"Souls-like", "Action"},
	{"Souls-like", "Action RPG"},
	{"Metroidvania", "Pixel Graphics"},
	{"Metroidvania", "Action"},
	{"Survival", "Crafting"},
	{"Survival", "Horror"},
	{"Survival", "Open World"},
	{"Survival", "Co-op"},
	{"Co-op", "Action"},
	{"Co-op", "Puzzle"},
	{"Co-op", "Horror"},
	{"Local Co-Op", "Platformer"},
	{"Strategy", "Turn-Based"},
	{"Strategy", "City Builder"},
	{"Turn-Based Tactics", "RPG"},
	{"Cozy", "Farming Sim"},
	{"Cozy", "Simulation"},
	{"Cozy", "Management"},
	{"Pixel Graphics", "Platformer"},
	{"Pixel Graphics", "Action"},
	{"Hand-Drawn", "Adventure"},
	{"Anime", "RPG"},
	{"Anime", "Visual Novel"},
	{"Horror", "Psychological"},
	{"Horror", "Survival"},
	{"Sci-fi", "Strategy"},
	{"Fantasy", "RPG"},
	{"Cyberpunk", "Action"},
	{"Post-apocalyptic", "Survival"},
	{"Auto Battler", "Strategy"},
	{"Colony Sim", "Survival"},
	{"Tower Defense", "Strategy"},
	{"City Builder", "Simulation"},
}
