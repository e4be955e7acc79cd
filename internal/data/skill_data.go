package data

// statModDef — модификатор стата с per-level значениями.
type statModDef struct {
	op   string
	stat string
	vals []float64 // index = level-1
}

// skillDef — определение скилла с per-level массивами.
// Для полей-слайсов: индекс = level-1. Если массив короче levels — берётся последний элемент.
type skillDef struct {
	id               int32
	name             string
	levels           int32
	operateType      string
	targetType       string
	isMagic          bool
	isDance          bool
	sharedWithSummon bool
	hitTime          int32
	reuseDelay       int32
	abnormalType     string
	abnormalLevel    []int32 // пусто — равен уровню скилла
	abnormalTime     []int32
	mods             []statModDef
}

// skillDefs — бафы, танцы и песни, доступные через Community Board.
var skillDefs = []skillDef{
	// Prophet / Elder buffs
	{id: 1035, name: "Mental Shield", levels: 4, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MENTAL_SHIELD", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "mentalResist", vals: []float64{20, 25, 30, 35}}}},
	{id: 1036, name: "Magic Barrier", levels: 2, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MAGIC_BARRIER", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "mDef", vals: []float64{1.23, 1.3}}}},
	{id: 1040, name: "Shield", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: true, hitTime: 4000, reuseDelay: 2000, abnormalType: "PD_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "pDef", vals: []float64{1.08, 1.12, 1.15}}}},
	{id: 1043, name: "Holy Weapon", levels: 1, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "HOLY_WEAPON", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "holyAttack", vals: []float64{10}}}},
	{id: 1044, name: "Regeneration", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "LIFE_FORCE", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "regHp", vals: []float64{1.1, 1.15, 1.2}}}},
	{id: 1045, name: "Blessed Body", levels: 6, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MAX_HP_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "maxHp", vals: []float64{1.1, 1.15, 1.2, 1.25, 1.3, 1.35}}}},
	{id: 1048, name: "Blessed Soul", levels: 6, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MAX_MP_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "maxMp", vals: []float64{1.1, 1.15, 1.2, 1.25, 1.3, 1.35}}}},
	{id: 1059, name: "Empower", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MA_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "mAtk", vals: []float64{1.55, 1.65, 1.75}}}},
	{id: 1062, name: "Berserker Spirit", levels: 2, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "BERSERKER", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "pAtk", vals: []float64{1.05, 1.08}}, {op: "mul", stat: "mAtk", vals: []float64{1.1, 1.16}}}},
	{id: 1068, name: "Might", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: true, hitTime: 4000, reuseDelay: 2000, abnormalType: "PA_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "pAtk", vals: []float64{1.08, 1.12, 1.15}}}},
	{id: 1077, name: "Focus", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "CRITICAL_PROB_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "critRate", vals: []float64{1.2, 1.25, 1.3}}}},
	{id: 1078, name: "Concentration", levels: 6, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "CANCEL_PROB_DOWN", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "cancel", vals: []float64{-18, -25, -36, -44, -53, -53}}}},
	{id: 1085, name: "Acumen", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "CASTING_TIME_DOWN", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "mAtkSpd", vals: []float64{1.15, 1.23, 1.3}}}},
	{id: 1086, name: "Haste", levels: 2, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: true, hitTime: 4000, reuseDelay: 2000, abnormalType: "ATTACK_TIME_DOWN", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "pAtkSpd", vals: []float64{1.15, 1.33}}}},
	{id: 1204, name: "Wind Walk", levels: 2, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: true, hitTime: 4000, reuseDelay: 2000, abnormalType: "SPEED_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "runSpd", vals: []float64{20, 33}}}},
	{id: 1240, name: "Guidance", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "HIT_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "accCombat", vals: []float64{2, 3, 4}}}},
	{id: 1242, name: "Death Whisper", levels: 3, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "CRITICAL_DMG_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "critDmg", vals: []float64{1.25, 1.3, 1.35}}}},
	{id: 1243, name: "Bless Shield", levels: 6, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "SHIELD_PROB_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "mul", stat: "rShld", vals: []float64{1.5, 1.6, 1.7, 1.8, 1.9, 2.0}}}},
	{id: 1268, name: "Vampiric Rage", levels: 4, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "VAMPIRIC_ATTACK", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "absorbDam", vals: []float64{6, 7, 8, 9}}}},
	{id: 1303, name: "Wild Magic", levels: 2, operateType: "A2", targetType: "ONE", isMagic: true, sharedWithSummon: false, hitTime: 4000, reuseDelay: 2000, abnormalType: "MAGIC_CRITICAL_UP", abnormalTime: []int32{1200}, mods: []statModDef{{op: "add", stat: "mCritRate", vals: []float64{1, 2}}}},

	// Bladedancer dances
	{id: 271, name: "Dance of the Warrior", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_WARRIOR", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "pAtk", vals: []float64{1.12}}}},
	{id: 272, name: "Dance of Inspiration", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_INSPIRATION", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "accCombat", vals: []float64{4}}}},
	{id: 273, name: "Dance of the Mystic", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_MYSTIC", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "mAtk", vals: []float64{1.2}}}},
	{id: 274, name: "Dance of Fire", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_FIRE", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "critDmg", vals: []float64{1.35}}}},
	{id: 275, name: "Dance of Fury", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_FURY", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "pAtkSpd", vals: []float64{1.15}}}},
	{id: 276, name: "Dance of Concentration", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_CONCENTRATION", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "mAtkSpd", vals: []float64{1.3}}}},
	{id: 277, name: "Dance of Light", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_LIGHT", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "holyAttack", vals: []float64{20}}}},
	{id: 307, name: "Dance of Aqua Guard", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_AQUA_GUARD", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "waterRes", vals: []float64{30}}}},
	{id: 309, name: "Dance of Earth Guard", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_EARTH_GUARD", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "earthRes", vals: []float64{30}}}},
	{id: 310, name: "Dance of the Vampire", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_VAMPIRE", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "absorbDam", vals: []float64{8}}}},
	{id: 311, name: "Dance of Protection", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "DANCE_OF_PROTECTION", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "fallDamage", vals: []float64{-30}}}},

	// Swordsinger songs
	{id: 264, name: "Song of Earth", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_EARTH", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "pDef", vals: []float64{1.25}}}},
	{id: 265, name: "Song of Life", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_LIFE", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "regHp", vals: []float64{1.2}}}},
	{id: 266, name: "Song of Water", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_WATER", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "evasion", vals: []float64{3}}}},
	{id: 267, name: "Song of Warding", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_WARDING", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "mDef", vals: []float64{1.3}}}},
	{id: 268, name: "Song of Wind", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_WIND", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "runSpd", vals: []float64{20}}}},
	{id: 269, name: "Song of Hunter", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_HUNTER", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "critRate", vals: []float64{2.0}}}},
	{id: 270, name: "Song of Invocation", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_INVOCATION", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "darkRes", vals: []float64{30}}}},
	{id: 304, name: "Song of Vitality", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_VITALITY", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "maxHp", vals: []float64{1.3}}}},
	{id: 305, name: "Song of Vengeance", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_VENGEANCE", abnormalTime: []int32{120}, mods: []statModDef{{op: "mul", stat: "reflectDam", vals: []float64{1.2}}}},
	{id: 306, name: "Song of Flame Guard", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_FLAME_GUARD", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "fireRes", vals: []float64{30}}}},
	{id: 308, name: "Song of Storm Guard", levels: 1, operateType: "A2", targetType: "PARTY", isDance: true, hitTime: 2500, reuseDelay: 2000, abnormalType: "SONG_OF_STORM_GUARD", abnormalTime: []int32{120}, mods: []statModDef{{op: "add", stat: "windRes", vals: []float64{30}}}},

	// Greater Heal — не бафф, используется для проверки фильтра каталога.
	{id: 1217, name: "Greater Heal", levels: 3, operateType: "A1", targetType: "ONE", isMagic: true, hitTime: 5000, reuseDelay: 3000},
}
