package namegen

// scifiNouns mixes single words with hyphenated and multi-word compounds.
var scifiNouns = []string{
	"android",
	"asteroid",
	"blaster",
	"comet",
	"cosmos",
	"cruiser",
	"cyborg",
	"drone",
	"escape pod",
	"event horizon",
	"galaxy",
	"hologram",
	"hyperdrive",
	"ion cannon",
	"laser",
	"meteor",
	"module",
	"moonbase",
	"nebula",
	"nova",
	"orbit",
	"photon",
	"plasma",
	"probe",
	"pulsar",
	"quasar",
	"reactor",
	"replicant",
	"rocket",
	"rover",
	"satellite",
	"sensor",
	"shuttle",
	"singularity",
	"space elevator",
	"star chart",
	"starship",
	"station",
	"supernova",
	"telescope",
	"thruster",
	"tractor-beam",
	"transporter",
	"turbine",
	"vortex",
	"warp-drive",
	"wormhole",
}
