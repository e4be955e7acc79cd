package data

import (
	"fmt"
	"log/slog"
)

// --- Buylists ---

type buylistDef struct {
	listID int32
	npcID  int32
	items  []buylistItemDef
}

type buylistItemDef struct {
	itemID int32
	count  int32 // -1 = unlimited
	price  int64
}

// BuylistProduct — exported view of a buylist item for use outside the data package.
type BuylistProduct struct {
	ItemID int32
	Count  int32 // -1 = unlimited
	Price  int64
}

var buylistDefs = []buylistDef{
	// Community Board: расходники (Custom/shop.html → _bbssell).
	{listID: 423, items: []buylistItemDef{
		{itemID: 1463, count: -1, price: 7},    // Soulshot: D-grade
		{itemID: 1464, count: -1, price: 10},   // Soulshot: C-grade
		{itemID: 3947, count: -1, price: 15},   // Blessed Spiritshot: D-grade
		{itemID: 1060, count: -1, price: 100},  // Lesser Healing Potion
		{itemID: 1061, count: -1, price: 330},  // Healing Potion
		{itemID: 736, count: -1, price: 400},   // Scroll of Escape
		{itemID: 1829, count: -1, price: 1000}, // Scroll of Escape: Clan Hall
	}},
}

var buylistTable map[int32]*buylistDef

// LoadBuylists индексирует buylist'ы по ID.
func LoadBuylists() error {
	table := make(map[int32]*buylistDef, len(buylistDefs))
	for i := range buylistDefs {
		def := &buylistDefs[i]
		if _, dup := table[def.listID]; dup {
			return fmt.Errorf("duplicate buylist %d", def.listID)
		}
		table[def.listID] = def
	}
	buylistTable = table
	slog.Info("loaded buylists", "count", len(buylistTable))
	return nil
}

// GetBuylistProducts returns all products in a buylist.
// Returns nil if buylist not found.
func GetBuylistProducts(listID int32) []BuylistProduct {
	bl := buylistTable[listID]
	if bl == nil {
		return nil
	}
	products := make([]BuylistProduct, len(bl.items))
	for i, item := range bl.items {
		products[i] = BuylistProduct{ItemID: item.itemID, Count: item.count, Price: item.price}
	}
	return products
}

// --- Multisell ---

type multisellDef struct {
	listID int32
	items  []multisellEntryDef
}

type multisellEntryDef struct {
	ingredients []multisellIngDef
	productions []multisellIngDef
}

type multisellIngDef struct {
	itemID int32
	count  int64
}

// MultisellEntry — exported view of a multisell entry.
type MultisellEntry struct {
	EntryID     int32 // 1-indexed
	Ingredients []MultisellIngredient
	Productions []MultisellIngredient
}

// MultisellIngredient — ingredient or product of a multisell entry.
type MultisellIngredient struct {
	ItemID int32
	Count  int64
}

func msEntry(productID int32, ingredients ...multisellIngDef) multisellEntryDef {
	return multisellEntryDef{
		ingredients: ingredients,
		productions: []multisellIngDef{{itemID: productID, count: 1}},
	}
}

func adena(n int64) multisellIngDef { return multisellIngDef{itemID: 57, count: n} }

// coin — Gold Einhasad, валюта премиум магазинов.
func coin(n int64) multisellIngDef { return multisellIngDef{itemID: 4037, count: n} }

var multisellDefs = []multisellDef{
	// Armor (CurrencyManager armorshop, CB shop)
	{listID: 90001, items: []multisellEntryDef{
		msEntry(2384, adena(1_500_000)), // Zubei's Breastplate
		msEntry(2388, adena(1_100_000)), // Zubei's Gaiters
		msEntry(2390, adena(650_000)),   // Avadon Robe
		msEntry(356, coin(5)),           // Full Plate Armor
	}},
	// Weapons
	{listID: 90002, items: []multisellEntryDef{
		msEntry(2499, adena(2_000_000)), // Elven Long Sword
		msEntry(159, adena(2_400_000)),  // Bonebreaker
		msEntry(189, coin(8)),           // Staff of Life
	}},
	// Jewels
	{listID: 90003, items: []multisellEntryDef{
		msEntry(850, adena(400_000)), // Elven Necklace
		msEntry(851, adena(300_000)), // Elven Earring
		msEntry(852, adena(200_000)), // Elven Ring
	}},
}

var multisellTable map[int32]*multisellDef

// LoadMultisell индексирует multisell-листы по ID.
func LoadMultisell() error {
	table := make(map[int32]*multisellDef, len(multisellDefs))
	for i := range multisellDefs {
		def := &multisellDefs[i]
		if _, dup := table[def.listID]; dup {
			return fmt.Errorf("duplicate multisell %d", def.listID)
		}
		table[def.listID] = def
	}
	multisellTable = table
	slog.Info("loaded multisell lists", "count", len(multisellTable))
	return nil
}

// GetMultisellEntries returns all entries in a multisell list.
// Returns nil if multisell not found.
func GetMultisellEntries(listID int32) []MultisellEntry {
	ms := multisellTable[listID]
	if ms == nil {
		return nil
	}

	entries := make([]MultisellEntry, len(ms.items))
	for i, item := range ms.items {
		entries[i] = MultisellEntry{
			EntryID:     int32(i + 1),
			Ingredients: exportIngredients(item.ingredients),
			Productions: exportIngredients(item.productions),
		}
	}
	return entries
}

func exportIngredients(defs []multisellIngDef) []MultisellIngredient {
	out := make([]MultisellIngredient, len(defs))
	for i, d := range defs {
		out[i] = MultisellIngredient{ItemID: d.itemID, Count: d.count}
	}
	return out
}
