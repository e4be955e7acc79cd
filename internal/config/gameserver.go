package config

import (
	"fmt"
	"slices"
	"time"
)

// GameServer holds all configuration for the community board host.
type GameServer struct {
	// Database
	Database DatabaseConfig `yaml:"database"`

	// HTML
	HTMLDir  string `yaml:"html_dir"`
	LazyHTML bool   `yaml:"lazy_html"` // true — загружать шаблоны по требованию

	// Observability
	MetricsAddr string `yaml:"metrics_addr"` // пусто — без HTTP сервера метрик
	LogLevel    string `yaml:"log_level"`

	// Периодичность сохранения схем баффера в БД (0 — только при остановке).
	SchemeFlushInterval time.Duration `yaml:"scheme_flush_interval"`

	Premium        Premium        `yaml:"premium"`
	CommunityBoard CommunityBoard `yaml:"community_board"`
	Buffer         SchemeBuffer   `yaml:"buffer"`
	Player         PlayerLimits   `yaml:"player"`
}

// Premium holds the account premium system settings.
type Premium struct {
	Enabled bool `yaml:"enabled"`
}

// TeleportPoint — точка телепорта Community Board.
type TeleportPoint struct {
	Name string `yaml:"name"`
	X    int32  `yaml:"x"`
	Y    int32  `yaml:"y"`
	Z    int32  `yaml:"z"`
}

// CommunityBoard holds custom community board settings.
type CommunityBoard struct {
	CustomEnabled  bool `yaml:"custom_enabled"`
	KarmaDisabled  bool `yaml:"karma_disabled"`
	CastAnimations bool `yaml:"cast_animations"`

	EnableMultisells bool `yaml:"enable_multisells"`
	EnableTeleports  bool `yaml:"enable_teleports"`
	EnableBuffs      bool `yaml:"enable_buffs"`
	EnableHeal       bool `yaml:"enable_heal"`
	EnableDelevel    bool `yaml:"enable_delevel"`
	EnablePremium    bool `yaml:"enable_premium"`

	CurrencyItemID int32 `yaml:"currency_item_id"`
	TeleportPrice  int64 `yaml:"teleport_price"`
	BuffPrice      int64 `yaml:"buff_price"`
	HealPrice      int64 `yaml:"heal_price"`
	DelevelPrice   int64 `yaml:"delevel_price"`

	PremiumCoinID      int32 `yaml:"premium_coin_id"`
	PremiumPricePerDay int64 `yaml:"premium_price_per_day"`

	SellBuyListID int32 `yaml:"sell_buylist_id"`

	// Сколько скиллы заблокированы после телепорта.
	TeleportSkillLock time.Duration `yaml:"teleport_skill_lock"`

	Teleports      map[string]TeleportPoint `yaml:"teleports"`
	AvailableBuffs []int32                  `yaml:"available_buffs"`
}

// TeleportByName returns the teleport point registered under key.
func (c CommunityBoard) TeleportByName(key string) (TeleportPoint, bool) {
	tp, ok := c.Teleports[key]
	return tp, ok
}

// IsBuffAvailable reports whether skillID may be bought through _bbsbuff.
func (c CommunityBoard) IsBuffAvailable(skillID int32) bool {
	return slices.Contains(c.AvailableBuffs, skillID)
}

// SchemeBuffer holds scheme buffer limits and pricing.
type SchemeBuffer struct {
	MaxSchemes     int   `yaml:"max_schemes"`
	StaticBuffCost int64 `yaml:"static_buff_cost"` // > 0 — фиксированная цена за скилл
}

// PlayerLimits holds per-player buff slot limits.
type PlayerLimits struct {
	MaxBuffAmount  int `yaml:"max_buff_amount"`
	MaxDanceAmount int `yaml:"max_dance_amount"`
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		Database:            DefaultDatabase(),
		HTMLDir:             "data/html",
		MetricsAddr:         ":9102",
		LogLevel:            "info",
		SchemeFlushInterval: 5 * time.Minute,
		Premium:             Premium{Enabled: true},
		CommunityBoard: CommunityBoard{
			CustomEnabled:      true,
			KarmaDisabled:      true,
			CastAnimations:     false,
			EnableMultisells:   true,
			EnableTeleports:    true,
			EnableBuffs:        true,
			EnableHeal:         true,
			EnableDelevel:      false,
			EnablePremium:      false,
			CurrencyItemID:     57,
			TeleportPrice:      0,
			BuffPrice:          0,
			HealPrice:          0,
			DelevelPrice:       1_000_000_000,
			PremiumCoinID:      57,
			PremiumPricePerDay: 1_000_000,
			SellBuyListID:      423,
			TeleportSkillLock:  3 * time.Second,
			Teleports: map[string]TeleportPoint{
				"Giran":  {Name: "Giran", X: 83400, Y: 147943, Z: -3404},
				"Aden":   {Name: "Aden", X: 146331, Y: 25762, Z: -2018},
				"Dion":   {Name: "Dion", X: 15670, Y: 142983, Z: -2705},
				"Oren":   {Name: "Oren", X: 82956, Y: 53162, Z: -1495},
				"Gludio": {Name: "Gludio", X: -14225, Y: 123540, Z: -3121},
			},
			AvailableBuffs: []int32{
				1035, 1036, 1040, 1043, 1044, 1045, 1048, 1059, 1062, 1068,
				1077, 1078, 1085, 1086, 1204, 1240, 1242, 1243, 1268, 1303,
				271, 272, 273, 274, 275, 276, 277, 307, 309, 310, 311,
				264, 265, 266, 267, 268, 269, 270, 304, 305, 306, 308,
			},
		},
		Buffer: SchemeBuffer{
			MaxSchemes:     4,
			StaticBuffCost: -1,
		},
		Player: PlayerLimits{
			MaxBuffAmount:  20,
			MaxDanceAmount: 12,
		},
	}
}

// LoadGameServer loads game server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would break board commands at runtime.
func (c GameServer) Validate() error {
	if c.Buffer.MaxSchemes < 0 {
		return fmt.Errorf("buffer.max_schemes must be >= 0, got %d", c.Buffer.MaxSchemes)
	}
	if c.Player.MaxBuffAmount <= 0 {
		return fmt.Errorf("player.max_buff_amount must be > 0, got %d", c.Player.MaxBuffAmount)
	}
	if c.Player.MaxDanceAmount < 0 {
		return fmt.Errorf("player.max_dance_amount must be >= 0, got %d", c.Player.MaxDanceAmount)
	}
	if c.CommunityBoard.TeleportSkillLock < 0 {
		return fmt.Errorf("community_board.teleport_skill_lock must be >= 0")
	}
	return nil
}
