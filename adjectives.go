package namegen

// adjectives is shared by every theme. Keep entries lowercase; rendering is
// the formatter's job.
var adjectives = []string{
	"amber",
	"bold",
	"breezy",
	"bright",
	"brisk",
	"calm",
	"cheery",
	"chilly",
	"cosmic",
	"cozy",
	"crimson",
	"crispy",
	"curious",
	"dapper",
	"dashing",
	"dusty",
	"eager",
	"electric",
	"emerald",
	"fancy",
	"feisty",
	"fluffy",
	"frosty",
	"gentle",
	"giant",
	"gilded",
	"glossy",
	"golden",
	"hazy",
	"humble",
	"jolly",
	"lively",
	"lucky",
	"lunar",
	"majestic",
	"mellow",
	"merry",
	"mighty",
	"misty",
	"nebulous",
	"nimble",
	"noble",
	"peppy",
	"perky",
	"plucky",
	"polished",
	"quirky",
	"radiant",
	"rustic",
	"shiny",
	"silky",
	"sleek",
	"snappy",
	"sparkling",
	"spicy",
	"sturdy",
	"sunny",
	"swift",
	"tangy",
	"velvet",
	"vivid",
	"wandering",
	"witty",
	"zesty",
	"zippy",
}
