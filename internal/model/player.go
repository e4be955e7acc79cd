package model

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Допустимые уровни персонажа.
const (
	MinPlayerLevel int32 = 1
	MaxPlayerLevel int32 = 80
)

// Player — игровой персонаж.
// Добавляет player-specific данные к Character.
type Player struct {
	*Character // embedded

	characterID int64
	accountName string

	playerMu sync.RWMutex // отдельный mutex для player data

	clanName   string
	clanLeader bool
	experience int64
	sp         int64
	karma      int32
	pvpKills   int32
	pkKills    int32

	inventory *Inventory

	// Саммоны: не больше одного пета, servitor'ов может быть несколько.
	pet       *Summon
	servitors map[uint32]*Summon

	inDuel        atomic.Bool
	inOlympiad    atomic.Bool
	premiumStatus atomic.Bool
}

// NewPlayer создаёт нового игрока с валидацией.
//
// Parameters:
//   - objectID: ID в мире
//   - characterID: ID в базе данных
//   - accountName: логин аккаунта
//   - name: имя персонажа
//   - level: уровень (1..80)
func NewPlayer(objectID uint32, characterID int64, accountName, name string, level int32) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name cannot be empty")
	}
	if accountName == "" {
		return nil, fmt.Errorf("account name cannot be empty")
	}
	if level < MinPlayerLevel || level > MaxPlayerLevel {
		return nil, fmt.Errorf("level must be between %d and %d, got %d", MinPlayerLevel, MaxPlayerLevel, level)
	}

	maxHP, maxMP, maxCP := baseVitals(level)
	return &Player{
		Character:   NewCharacter(objectID, name, Location{}, level, maxHP, maxMP, maxCP),
		characterID: characterID,
		accountName: accountName,
		inventory:   NewInventory(characterID),
		servitors:   make(map[uint32]*Summon),
	}, nil
}

// baseVitals — упрощённая формула максимальных HP/MP/CP от уровня.
func baseVitals(level int32) (hp, mp, cp int32) {
	return 80 + level*30, 30 + level*15, 40 + level*20
}

// CharacterID возвращает ID персонажа в базе.
func (p *Player) CharacterID() int64 { return p.characterID }

// AccountName возвращает логин аккаунта.
func (p *Player) AccountName() string { return p.accountName }

// Inventory возвращает инвентарь игрока.
func (p *Player) Inventory() *Inventory { return p.inventory }

// SetLevel устанавливает уровень с валидацией и пересчитывает максимальные HP/MP/CP.
func (p *Player) SetLevel(level int32) error {
	if level < MinPlayerLevel || level > MaxPlayerLevel {
		return fmt.Errorf("level must be between %d and %d, got %d", MinPlayerLevel, MaxPlayerLevel, level)
	}
	p.Character.SetLevel(level)
	hp, mp, cp := baseVitals(level)
	p.SetMaxHP(hp)
	p.SetMaxMP(mp)
	p.SetMaxCP(cp)
	return nil
}

// ClanName возвращает имя клана (пустая строка — без клана).
func (p *Player) ClanName() string {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.clanName
}

// SetClanName устанавливает имя клана.
func (p *Player) SetClanName(name string) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.clanName = name
}

// IsClanLeader reports whether the player leads his clan.
func (p *Player) IsClanLeader() bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.clanLeader
}

// SetClanLeader помечает игрока лидером клана.
func (p *Player) SetClanLeader(v bool) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.clanLeader = v
}

// Experience возвращает опыт.
func (p *Player) Experience() int64 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.experience
}

// SetExperience устанавливает опыт.
func (p *Player) SetExperience(exp int64) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.experience = max(exp, 0)
}

// SP возвращает skill points.
func (p *Player) SP() int64 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.sp
}

// SetSP устанавливает skill points.
func (p *Player) SetSP(sp int64) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.sp = max(sp, 0)
}

// Karma возвращает карму (> 0 — игрок PK).
func (p *Player) Karma() int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.karma
}

// SetKarma устанавливает карму.
func (p *Player) SetKarma(karma int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.karma = max(karma, 0)
}

// PvPKills возвращает количество PvP убийств.
func (p *Player) PvPKills() int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.pvpKills
}

// SetPvPKills устанавливает количество PvP убийств.
func (p *Player) SetPvPKills(n int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.pvpKills = n
}

// PKKills возвращает количество PK убийств.
func (p *Player) PKKills() int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.pkKills
}

// SetPKKills устанавливает количество PK убийств.
func (p *Player) SetPKKills(n int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.pkKills = n
}

// IsInDuel reports whether the player is dueling.
func (p *Player) IsInDuel() bool { return p.inDuel.Load() }

// SetInDuel sets the duel flag.
func (p *Player) SetInDuel(v bool) { p.inDuel.Store(v) }

// IsInOlympiadMode reports whether the player participates in olympiad.
func (p *Player) IsInOlympiadMode() bool { return p.inOlympiad.Load() }

// SetInOlympiadMode sets the olympiad flag.
func (p *Player) SetInOlympiadMode(v bool) { p.inOlympiad.Store(v) }

// HasPremiumStatus reports whether the account has active premium.
func (p *Player) HasPremiumStatus() bool { return p.premiumStatus.Load() }

// SetPremiumStatus sets the premium flag.
func (p *Player) SetPremiumStatus(v bool) { p.premiumStatus.Store(v) }

// Pet возвращает пета (может быть nil).
func (p *Player) Pet() *Summon {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.pet
}

// HasPet reports whether a pet is summoned.
func (p *Player) HasPet() bool {
	return p.Pet() != nil
}

// SetPet устанавливает пета. nil — отозвать.
func (p *Player) SetPet(pet *Summon) error {
	if pet != nil && !pet.IsPet() {
		return fmt.Errorf("summon %d is not a pet", pet.ObjectID())
	}
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.pet = pet
	return nil
}

// AddServitor добавляет servitor'а.
func (p *Player) AddServitor(s *Summon) error {
	if s == nil || !s.IsServitor() {
		return fmt.Errorf("summon is not a servitor")
	}
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.servitors[s.ObjectID()] = s
	return nil
}

// RemoveServitor отзывает servitor'а по objectID.
func (p *Player) RemoveServitor(objectID uint32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	delete(p.servitors, objectID)
}

// Servitors возвращает servitor'ов в порядке objectID.
func (p *Player) Servitors() []*Summon {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()

	out := make([]*Summon, 0, len(p.servitors))
	for _, s := range p.servitors {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *Summon) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})
	return out
}

// ServitorsAndPets возвращает пета (если есть) и всех servitor'ов.
func (p *Player) ServitorsAndPets() []*Summon {
	out := make([]*Summon, 0, 4)
	if pet := p.Pet(); pet != nil {
		out = append(out, pet)
	}
	return append(out, p.Servitors()...)
}
