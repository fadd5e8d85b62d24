package core

// ItemKind enumerates every item the simulation can move through an
// inventory, belt, or inserter hand: raw ores, smelted plates, crafted
// components, and the buildable items players place as structures.
type ItemKind uint8

const (
	ItemIronOre ItemKind = iota
	ItemCopperOre
	ItemCoal
	ItemStone

	ItemIronPlate
	ItemCopperPlate
	ItemStoneBrick

	ItemGear
	ItemCopperWire
	ItemCircuit

	ItemChest
	ItemInserter
	ItemTransportBelt
	ItemUndergroundBelt
	ItemSplitter
	ItemOreMine
	ItemFurnace
	ItemElectricFurnace
	ItemAssembler
	ItemBoiler
	ItemSteamEngine
	ItemOffshorePump
	ItemPipe
	ItemUndergroundPipe
	ItemElectPole
	ItemLab
)

// FluidKind enumerates the two fluids the simulation transports.
type FluidKind uint8

const (
	FluidWater FluidKind = iota
	FluidSteam
)
