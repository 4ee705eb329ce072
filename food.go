package namegen

// foodNouns deliberately includes multi-word entries so that rendered names
// exercise per-segment capitalization ("black cod" -> "Black Cod").
var foodNouns = []string{
	"biscotti",
	"black cod",
	"bok choy",
	"brioche",
	"churro",
	"creme brulee",
	"crumpet",
	"custard",
	"dumpling",
	"falafel",
	"gelato",
	"gnocchi",
	"granola",
	"gumbo",
	"hotpot",
	"ice cream",
	"jambalaya",
	"kebab",
	"lasagna",
	"macaron",
	"mango",
	"meatball",
	"muffin",
	"noodle",
	"nougat",
	"omelet",
	"pad thai",
	"pancake",
	"papaya",
	"pierogi",
	"pretzel",
	"pudding",
	"quiche",
	"ravioli",
	"risotto",
	"samosa",
	"scone",
	"sorbet",
	"spring roll",
	"strudel",
	"taco",
	"tamale",
	"tiramisu",
	"toffee",
	"truffle",
	"turnip",
	"waffle",
	"wonton",
}
