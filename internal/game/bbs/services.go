package bbs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/model"
)

// Метки услуг для метрик списания валюты.
const (
	serviceTeleport = "teleport"
	serviceBuff     = "buff"
	serviceHeal     = "heal"
	serviceDelevel  = "delevel"
	servicePremium  = "premium"
	serviceScheme   = "scheme"
)

// openMultisell — "_bbsmultisell;<listID>,<page>".
func (b *HomeBoard) openMultisell(ctx context.Context, cmd string, s Session) string {
	return b.multisell(ctx, cmd, "_bbsmultisell;", false, s)
}

// openExcMultisell — "_bbsexcmultisell;<listID>,<page>": только предметы из инвентаря.
func (b *HomeBoard) openExcMultisell(ctx context.Context, cmd string, s Session) string {
	return b.multisell(ctx, cmd, "_bbsexcmultisell;", true, s)
}

func (b *HomeBoard) multisell(ctx context.Context, cmd, prefix string, inventoryOnly bool, s Session) string {
	args, ok := strings.CutPrefix(cmd, prefix)
	if !ok {
		rejectInvalid(cmd, "missing multisell arguments")
		return ""
	}
	idStr, page, ok := strings.Cut(args, ",")
	if !ok {
		rejectInvalid(cmd, "expected <listID>,<page>")
		return ""
	}
	listID, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 32)
	if err != nil {
		rejectInvalid(cmd, "list id is not a number")
		return ""
	}

	out := b.customPage(ctx, s, strings.TrimSpace(page))
	if err := s.SendMultisell(int32(listID), inventoryOnly); err != nil {
		slog.Warn("community board: sending multisell", "list_id", listID, "error", err)
	}
	return out
}

// openSell — "_bbssell;<page>": buylist для продажи предметов.
func (b *HomeBoard) openSell(ctx context.Context, cmd string, s Session) string {
	page, ok := strings.CutPrefix(cmd, "_bbssell;")
	if !ok {
		rejectInvalid(cmd, "missing sell page")
		return ""
	}

	out := b.customPage(ctx, s, page)
	if err := s.SendBuyList(b.cfg.SellBuyListID); err != nil {
		slog.Warn("community board: sending sell list", "list_id", b.cfg.SellBuyListID, "error", err)
	}
	return out
}

// teleport — "_bbsteleport;<key>". Страница после телепорта не показывается.
func (b *HomeBoard) teleport(_ context.Context, cmd string, s Session) string {
	key, ok := strings.CutPrefix(cmd, "_bbsteleport;")
	if !ok || key == "" {
		rejectInvalid(cmd, "missing teleport key")
		return ""
	}

	p := s.Player()
	inv := p.Inventory()
	if inv.CountItemsByID(b.cfg.CurrencyItemID) < b.cfg.TeleportPrice {
		s.SendMessage(msgCurrency)
		return ""
	}

	tp, ok := b.cfg.TeleportByName(key)
	if !ok {
		slog.Debug("community board: unknown teleport", "key", key)
		return ""
	}

	p.DisableAllSkills()
	s.CloseBoard()
	if !payCurrency(s, b.cfg.CurrencyItemID, b.cfg.TeleportPrice, serviceTeleport) {
		p.EnableAllSkills()
		return ""
	}
	p.SetInstanceID(0)
	loc := model.NewLocation(tp.X, tp.Y, tp.Z, 0)
	p.SetLocation(loc)
	s.SendTeleport(loc)
	b.afterFunc(b.cfg.TeleportSkillLock, p.EnableAllSkills)

	return ""
}

type buffOrder struct {
	skillID int32
	level   int32
}

// buyBuffs — "_bbsbuff;<id>,<lvl>;<id>,<lvl>;...;<page>".
// Цена — BuffPrice за каждый заказанный скилл.
func (b *HomeBoard) buyBuffs(ctx context.Context, cmd string, s Session) string {
	args, ok := strings.CutPrefix(cmd, "_bbsbuff;")
	if !ok {
		rejectInvalid(cmd, "missing buff list")
		return ""
	}
	// Последний элемент — страница; заказ может быть пустым.
	parts := strings.Split(args, ";")
	page := parts[len(parts)-1]

	orders := make([]buffOrder, 0, len(parts)-1)
	for _, part := range parts[:len(parts)-1] {
		o, err := parseBuffOrder(part)
		if err != nil {
			rejectInvalid(cmd, err.Error())
			return ""
		}
		orders = append(orders, o)
	}

	p := s.Player()
	price := b.cfg.BuffPrice * int64(len(orders))
	if payCurrency(s, b.cfg.CurrencyItemID, price, serviceBuff) {
		targets := make([]*model.Character, 0, 4)
		targets = append(targets, p.Character)
		for _, summon := range p.ServitorsAndPets() {
			targets = append(targets, summon.Character)
		}

		for _, o := range orders {
			tmpl := data.GetSkillTemplate(o.skillID, o.level)
			if tmpl == nil || !b.cfg.IsBuffAvailable(o.skillID) {
				slog.Debug("community board: buff not available", "skill_id", o.skillID, "level", o.level)
				continue
			}
			for i, target := range targets {
				if i > 0 && tmpl.SharedWithSummon {
					continue
				}
				b.applyBuff(s, tmpl, p.Character, target)
			}
		}
	}

	return b.customPage(ctx, s, page)
}

func parseBuffOrder(s string) (buffOrder, error) {
	idStr, lvlStr, ok := strings.Cut(s, ",")
	if !ok {
		return buffOrder{}, fmt.Errorf("buff %q: expected <id>,<lvl>", s)
	}
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return buffOrder{}, fmt.Errorf("buff %q: skill id: %w", s, err)
	}
	lvl, err := strconv.ParseInt(lvlStr, 10, 32)
	if err != nil {
		return buffOrder{}, fmt.Errorf("buff %q: skill level: %w", s, err)
	}
	return buffOrder{skillID: int32(id), level: int32(lvl)}, nil
}

// applyBuff накладывает эффекты скилла и, если включено, показывает анимацию каста.
func (b *HomeBoard) applyBuff(s Session, tmpl *data.SkillTemplate, caster, target *model.Character) {
	if b.cfg.CastAnimations {
		s.SendSkillAnimation(target, tmpl)
	}
	if _, err := b.effects.Apply(tmpl, caster.ObjectID(), target.ObjectID()); err != nil {
		slog.Warn("community board: applying buff",
			"skill", tmpl.String(),
			"target", target.ObjectID(),
			"error", err)
	}
}

// heal — "_bbsheal;<page>": полное восстановление игрока и его саммонов.
func (b *HomeBoard) heal(ctx context.Context, cmd string, s Session) string {
	page, ok := strings.CutPrefix(cmd, "_bbsheal;")
	if !ok {
		rejectInvalid(cmd, "missing heal page")
		return ""
	}

	p := s.Player()
	if payCurrency(s, b.cfg.CurrencyItemID, b.cfg.HealPrice, serviceHeal) {
		p.RestoreVitals()
		for _, summon := range p.ServitorsAndPets() {
			summon.RestoreVitals()
		}
		s.SendMessage("You used heal!")
	}

	return b.customPage(ctx, s, page)
}

// delevel — "_bbsdelevel": понижение уровня на 1.
func (b *HomeBoard) delevel(ctx context.Context, cmd string, s Session) string {
	if cmd != "_bbsdelevel" {
		rejectInvalid(cmd, "delevel takes no arguments")
		return ""
	}

	p := s.Player()
	if p.Inventory().CountItemsByID(b.cfg.CurrencyItemID) < b.cfg.DelevelPrice {
		s.SendMessage(msgCurrency)
		return ""
	}
	if p.Level() <= model.MinPlayerLevel {
		s.SendMessage("You are at minimum level!")
		return ""
	}
	if !payCurrency(s, b.cfg.CurrencyItemID, b.cfg.DelevelPrice, serviceDelevel) {
		return ""
	}

	newLevel := p.Level() - 1
	p.SetExperience(data.GetExpForLevel(newLevel))
	if err := p.SetLevel(newLevel); err != nil {
		slog.Error("community board: delevel", "player", p.Name(), "error", err)
		return ""
	}
	p.RestoreVitals()
	s.SendUserInfo()

	return b.render(ctx, s, delevelCompletePath, nil)
}

// buyPremium — "_bbspremium;<days>": премиум аккаунта за PremiumCoinID.
func (b *HomeBoard) buyPremium(ctx context.Context, cmd string, s Session) string {
	args, ok := strings.CutPrefix(cmd, "_bbspremium;")
	if !ok {
		rejectInvalid(cmd, "missing premium days")
		return ""
	}
	daysStr, _, _ := strings.Cut(args, ",")
	days, err := strconv.Atoi(strings.TrimSpace(daysStr))
	if err != nil || days <= 0 {
		rejectInvalid(cmd, "premium days must be a positive number")
		return ""
	}

	p := s.Player()
	price := b.cfg.PremiumPricePerDay * int64(days)
	if p.Inventory().CountItemsByID(b.cfg.PremiumCoinID) < price {
		s.SendMessage(msgCurrency)
		return ""
	}

	end, err := b.premium.AddPremiumTime(ctx, p.AccountName(), time.Duration(days)*24*time.Hour)
	if err != nil {
		slog.Error("community board: adding premium time", "account", p.AccountName(), "error", err)
		return ""
	}
	if !payCurrency(s, b.cfg.PremiumCoinID, price, servicePremium) {
		slog.Error("community board: premium granted but coins not taken",
			"account", p.AccountName(), "price", price)
	}

	s.SendMessage("Your account will now have premium status until " + end.Format(dateLayout) + ".")
	return b.render(ctx, s, premiumThankYouPath, html.DialogData{"playername": p.Name()})
}
