package structures

import (
	"github.com/brackfield/beltworks/engine/core"
	"github.com/brackfield/beltworks/engine/inventory"
)

// SmeltingRecipes are the furnace/electric-furnace candidates tried in
// order during auto-selection (spec.md §4.4: "furnace: from item kind").
var SmeltingRecipes = []inventory.Recipe{
	{
		Name:       "iron-plate",
		Input:      inventory.Inventory{core.ItemIronOre: 1},
		Output:     inventory.Inventory{core.ItemIronPlate: 1},
		RecipeTime: 16,
		PowerCost:  4,
	},
	{
		Name:       "copper-plate",
		Input:      inventory.Inventory{core.ItemCopperOre: 1},
		Output:     inventory.Inventory{core.ItemCopperPlate: 1},
		RecipeTime: 16,
		PowerCost:  4,
	},
	{
		Name:       "stone-brick",
		Input:      inventory.Inventory{core.ItemStone: 2},
		Output:     inventory.Inventory{core.ItemStoneBrick: 1},
		RecipeTime: 16,
		PowerCost:  4,
	},
}

// AssemblerRecipes are the player-selectable recipes an Assembler can
// run; the index a player passes to set_recipe indexes into this slice.
var AssemblerRecipes = []inventory.Recipe{
	{
		Name:       "gear",
		Input:      inventory.Inventory{core.ItemIronPlate: 2},
		Output:     inventory.Inventory{core.ItemGear: 1},
		RecipeTime: 20,
		PowerCost:  6,
	},
	{
		Name:       "copper-wire",
		Input:      inventory.Inventory{core.ItemCopperPlate: 1},
		Output:     inventory.Inventory{core.ItemCopperWire: 2},
		RecipeTime: 12,
		PowerCost:  6,
	},
	{
		Name:       "circuit",
		Input:      inventory.Inventory{core.ItemIronPlate: 1, core.ItemCopperWire: 3},
		Output:     inventory.Inventory{core.ItemCircuit: 1},
		RecipeTime: 30,
		PowerCost:  8,
	},
}

// MineRecipe builds the implicit recipe an OreMine runs against the
// tile's ore kind: recipe_time=80, power_cost=8 per spec.md §4.9.
func MineRecipe(item core.ItemKind) inventory.Recipe {
	return inventory.Recipe{
		Name:       "mine",
		Output:     inventory.Inventory{item: 1},
		RecipeTime: 80,
		PowerCost:  8,
	}
}
