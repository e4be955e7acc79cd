package schemebuffer

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/udisondev/la2go-board/internal/config"
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/db"
)

// Repository — хранилище схем.
type Repository interface {
	LoadAll(ctx context.Context) ([]db.SchemeRow, error)
	ReplaceAll(ctx context.Context, schemes []db.SchemeRow) error
}

// Scheme — именованный упорядоченный набор skill ID.
type Scheme struct {
	Name   string
	Skills []int32
}

// Table хранит схемы баффера всех персонажей в памяти.
// Имена схем регистронезависимы, отдаются в отсортированном порядке.
//
// Thread-safe.
type Table struct {
	cfg  config.SchemeBuffer
	repo Repository

	mu sync.RWMutex
	// characterID → lower(name) → scheme
	schemes map[int64]map[string]*Scheme

	dirty atomic.Bool
}

// NewTable creates an empty table. repo may be nil (no persistence).
func NewTable(cfg config.SchemeBuffer, repo Repository) *Table {
	return &Table{
		cfg:     cfg,
		repo:    repo,
		schemes: make(map[int64]map[string]*Scheme),
	}
}

func key(name string) string { return strings.ToLower(name) }

// MaxSchemes возвращает лимит схем на персонажа.
func (t *Table) MaxSchemes() int { return t.cfg.MaxSchemes }

// PlayerSchemes возвращает копии схем персонажа, отсортированные по имени.
func (t *Table) PlayerSchemes(characterID int64) []Scheme {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byName := t.schemes[characterID]
	out := make([]Scheme, 0, len(byName))
	for _, s := range byName {
		out = append(out, Scheme{Name: s.Name, Skills: slices.Clone(s.Skills)})
	}
	slices.SortFunc(out, func(a, b Scheme) int {
		return cmp.Compare(key(a.Name), key(b.Name))
	})
	return out
}

// Scheme возвращает копию списка скиллов схемы.
func (t *Table) Scheme(characterID int64, name string) ([]int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.schemes[characterID][key(name)]
	if !ok {
		return nil, false
	}
	return slices.Clone(s.Skills), true
}

// HasScheme reports whether the character owns a scheme with this name.
func (t *Table) HasScheme(characterID int64, name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.schemes[characterID][key(name)]
	return ok
}

// SchemeCount возвращает число схем персонажа.
func (t *Table) SchemeCount(characterID int64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.schemes[characterID])
}

// SetScheme создаёт или перезаписывает схему.
func (t *Table) SetScheme(characterID int64, name string, skills []int32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	byName, ok := t.schemes[characterID]
	if !ok {
		byName = make(map[string]*Scheme)
		t.schemes[characterID] = byName
	}
	byName[key(name)] = &Scheme{Name: name, Skills: slices.Clone(skills)}
	t.dirty.Store(true)
}

// AddSkill добавляет скилл в конец схемы.
// false — схемы нет или скилл уже в ней.
func (t *Table) AddSkill(characterID int64, name string, skillID int32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.schemes[characterID][key(name)]
	if !ok || slices.Contains(s.Skills, skillID) {
		return false
	}
	s.Skills = append(s.Skills, skillID)
	t.dirty.Store(true)
	return true
}

// RemoveSkill убирает скилл из схемы.
func (t *Table) RemoveSkill(characterID int64, name string, skillID int32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.schemes[characterID][key(name)]
	if !ok {
		return false
	}
	i := slices.Index(s.Skills, skillID)
	if i < 0 {
		return false
	}
	s.Skills = slices.Delete(s.Skills, i, i+1)
	t.dirty.Store(true)
	return true
}

// DeleteScheme удаляет схему.
func (t *Table) DeleteScheme(characterID int64, name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	byName := t.schemes[characterID]
	if _, ok := byName[key(name)]; !ok {
		return false
	}
	delete(byName, key(name))
	if len(byName) == 0 {
		delete(t.schemes, characterID)
	}
	t.dirty.Store(true)
	return true
}

// SkillIDsByType возвращает скиллы группы каталога.
func (t *Table) SkillIDsByType(groupType string) []int32 {
	return data.BufferSkillsByType(groupType)
}

// SkillTypes возвращает группы каталога.
func (t *Table) SkillTypes() []string {
	return data.BufferSkillTypes()
}

// AvailableBuff возвращает запись каталога или nil.
func (t *Table) AvailableBuff(skillID int32) *data.BufferSkill {
	return data.GetBufferSkill(skillID)
}

// Fee считает стоимость схемы: фиксированная цена за скилл, если задана,
// иначе сумма цен каталога.
func (t *Table) Fee(skills []int32) int64 {
	if t.cfg.StaticBuffCost > 0 {
		return int64(len(skills)) * t.cfg.StaticBuffCost
	}

	var fee int64
	for _, id := range skills {
		if bs := data.GetBufferSkill(id); bs != nil {
			fee += bs.Price
		}
	}
	return fee
}

// CountOf считает танцы/песни (dances == true) или обычные баффы.
// Неизвестные скиллы не учитываются.
func CountOf(skills []int32, dances bool) int {
	n := 0
	for _, id := range skills {
		tmpl := data.GetSkillTemplate(id, 1)
		if tmpl != nil && tmpl.IsDance == dances {
			n++
		}
	}
	return n
}

// Load заменяет содержимое таблицы данными из репозитория.
func (t *Table) Load(ctx context.Context) error {
	if t.repo == nil {
		return nil
	}

	rows, err := t.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading buffer schemes: %w", err)
	}

	schemes := make(map[int64]map[string]*Scheme)
	for _, row := range rows {
		byName, ok := schemes[row.CharacterID]
		if !ok {
			byName = make(map[string]*Scheme)
			schemes[row.CharacterID] = byName
		}
		byName[key(row.Name)] = &Scheme{Name: row.Name, Skills: row.Skills}
	}

	t.mu.Lock()
	t.schemes = schemes
	t.mu.Unlock()
	t.dirty.Store(false)

	slog.Info("loaded buffer schemes", "characters", len(schemes), "schemes", len(rows))
	return nil
}

// Save пишет все схемы в репозиторий, если с прошлого сохранения были изменения.
func (t *Table) Save(ctx context.Context) error {
	if t.repo == nil || !t.dirty.Swap(false) {
		return nil
	}

	t.mu.RLock()
	rows := make([]db.SchemeRow, 0, len(t.schemes))
	for charID, byName := range t.schemes {
		for _, s := range byName {
			rows = append(rows, db.SchemeRow{
				CharacterID: charID,
				Name:        s.Name,
				Skills:      slices.Clone(s.Skills),
			})
		}
	}
	t.mu.RUnlock()

	if err := t.repo.ReplaceAll(ctx, rows); err != nil {
		t.dirty.Store(true)
		return fmt.Errorf("saving buffer schemes: %w", err)
	}

	slog.Debug("buffer schemes saved", "schemes", len(rows))
	return nil
}
