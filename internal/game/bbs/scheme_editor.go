package bbs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/game/schemebuffer"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/metrics"
	"github.com/udisondev/la2go-board/internal/model"
)

const (
	maxSchemeNameLength = 14

	// Скиллов на странице редактора схемы.
	editorPageSize = 6
	// Ячеек в строке таблицы скиллов.
	editorColumns = 3
	// Ячеек в строке таблицы групп.
	typeColumns = 4
)

// createScheme — "_bbscreatescheme <name>".
func (b *HomeBoard) createScheme(ctx context.Context, cmd string, s Session) string {
	name := strings.TrimSpace(strings.TrimPrefix(cmd, "_bbscreatescheme"))
	p := s.Player()
	charID := p.CharacterID()

	valid := true
	if len([]rune(name)) > maxSchemeNameLength {
		s.SendMessage("Scheme's name must contain up to 14 chars.")
		valid = false
	}
	if !isSchemeName(name) {
		s.SendMessage("Please use plain alphanumeric characters.")
		valid = false
	}
	if b.schemes.SchemeCount(charID) >= b.schemes.MaxSchemes() {
		s.SendMessage("Maximum schemes amount is already reached.")
		valid = false
	}
	if b.schemes.HasScheme(charID, name) {
		s.SendMessage("The scheme name already exists.")
		valid = false
	}

	if valid {
		b.schemes.SetScheme(charID, name, nil)
	}

	return b.render(ctx, s, bufferMainPath, html.DialogData{
		"navigation": b.renderNavigation(s, bufferNavPath),
	})
}

// isSchemeName — буквы и цифры, плюс пробел и " .,-+!?".
func isSchemeName(name string) bool {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(" .,-+!?", r) {
			return -1
		}
		return r
	}, name)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// editorArgs — "<cmd>;<type>;<name>;<page>[;...]".
type editorArgs struct {
	groupType string
	name      string
	page      int
	rest      []string
}

func parseEditorArgs(cmd, prefix string) (editorArgs, error) {
	rest, ok := strings.CutPrefix(cmd, prefix)
	if !ok || rest == "" {
		return editorArgs{}, fmt.Errorf("missing arguments")
	}
	// Первый разделитель бывает пробелом: "_bbseditscheme Buffs;name;1".
	rest = rest[1:]
	parts := strings.Split(rest, ";")
	if len(parts) < 3 {
		return editorArgs{}, fmt.Errorf("expected <type>;<name>;<page>")
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil {
		return editorArgs{}, fmt.Errorf("page %q: %w", parts[2], err)
	}
	return editorArgs{groupType: parts[0], name: parts[1], page: page, rest: parts[3:]}, nil
}

// editScheme — "_bbseditscheme;<type>;<name>;<page>".
func (b *HomeBoard) editScheme(ctx context.Context, cmd string, s Session) string {
	args, err := parseEditorArgs(cmd, "_bbseditscheme")
	if err != nil {
		rejectInvalid(cmd, err.Error())
		return ""
	}
	return b.renderEditor(ctx, s, args.groupType, args.name, args.page)
}

// selectSkill — "_bbsskillselect;<type>;<name>;<skillID>;<page>".
func (b *HomeBoard) selectSkill(ctx context.Context, cmd string, s Session) string {
	args, skillID, ok := parseSkillToggle(cmd, "_bbsskillselect")
	if !ok {
		return ""
	}

	p := s.Player()
	if !strings.EqualFold(args.name, "none") {
		b.addSchemeSkill(s, p.CharacterID(), args.name, skillID)
	}

	return b.renderEditor(ctx, s, args.groupType, args.name, args.page)
}

func (b *HomeBoard) addSchemeSkill(s Session, charID int64, name string, skillID int32) {
	if b.schemes.AvailableBuff(skillID) == nil {
		slog.Debug("community board: skill not in buffer catalog", "skill_id", skillID)
		return
	}
	tmpl := data.GetMaxLevelSkill(skillID)
	if tmpl == nil {
		return
	}

	skills, _ := b.schemes.Scheme(charID, name)
	if tmpl.IsDance {
		if schemebuffer.CountOf(skills, true) >= b.limits.MaxDanceAmount {
			s.SendMessage("This scheme has reached the maximum amount of dances/songs.")
			return
		}
	} else if schemebuffer.CountOf(skills, false) >= b.limits.MaxBuffAmount {
		s.SendMessage("This scheme has reached the maximum amount of buffs.")
		return
	}

	b.schemes.AddSkill(charID, name, skillID)
}

// unselectSkill — "_bbsskillunselect;<type>;<name>;<skillID>;<page>".
func (b *HomeBoard) unselectSkill(ctx context.Context, cmd string, s Session) string {
	args, skillID, ok := parseSkillToggle(cmd, "_bbsskillunselect")
	if !ok {
		return ""
	}

	b.schemes.RemoveSkill(s.Player().CharacterID(), args.name, skillID)
	return b.renderEditor(ctx, s, args.groupType, args.name, args.page)
}

// parseSkillToggle разбирает "<type>;<name>;<skillID>;<page>".
func parseSkillToggle(cmd, prefix string) (editorArgs, int32, bool) {
	rest, ok := strings.CutPrefix(cmd, prefix+";")
	if !ok {
		rejectInvalid(cmd, "missing arguments")
		return editorArgs{}, 0, false
	}
	parts := strings.Split(rest, ";")
	if len(parts) < 4 {
		rejectInvalid(cmd, "expected <type>;<name>;<skillID>;<page>")
		return editorArgs{}, 0, false
	}
	skillID, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		rejectInvalid(cmd, "skill id is not a number")
		return editorArgs{}, 0, false
	}
	page, err := strconv.Atoi(parts[3])
	if err != nil {
		rejectInvalid(cmd, "page is not a number")
		return editorArgs{}, 0, false
	}
	return editorArgs{groupType: parts[0], name: parts[1], page: page}, int32(skillID), true
}

// giveBuffs — "_bbsgivebuffs;<name>;<cost>[;pet|summon]".
// Стоимость пересчитывается по текущему составу схемы, значение из bypass не используется.
func (b *HomeBoard) giveBuffs(ctx context.Context, cmd string, s Session) string {
	rest, ok := strings.CutPrefix(cmd, "_bbsgivebuffs;")
	if !ok {
		rejectInvalid(cmd, "missing scheme name")
		return ""
	}
	parts := strings.Split(rest, ";")
	if len(parts) < 2 {
		rejectInvalid(cmd, "expected <name>;<cost>[;pet|summon]")
		return ""
	}
	name := parts[0]

	p := s.Player()
	target := p.Character
	if len(parts) > 2 {
		target = summonTarget(p, parts[2])
		if target == nil {
			s.SendMessage("You don't have a pet.")
			return b.render(ctx, s, bufferMainPath, nil)
		}
	}

	skills, _ := b.schemes.Scheme(p.CharacterID(), name)
	fee := b.schemes.Fee(skills)
	if fee > 0 {
		if err := p.Inventory().ReduceAdena(fee); err != nil {
			metrics.BoardRejected.WithLabelValues(metrics.ReasonCurrency).Inc()
			s.SendMessage("You do not have enough adena.")
			return b.render(ctx, s, bufferMainPath, nil)
		}
		metrics.CurrencySpent.WithLabelValues(serviceScheme).Add(float64(fee))
	}

	for _, id := range skills {
		tmpl := data.GetMaxLevelSkill(id)
		if tmpl == nil {
			continue
		}
		if _, err := b.effects.Apply(tmpl, target.ObjectID(), target.ObjectID()); err != nil {
			slog.Warn("community board: applying scheme buff",
				"scheme", name,
				"skill", tmpl.String(),
				"error", err)
		}
	}

	return b.render(ctx, s, bufferMainPath, nil)
}

// summonTarget: "pet" — пет, "summon" — последний servitor. Регистр не важен.
func summonTarget(p *model.Player, kind string) *model.Character {
	switch {
	case strings.EqualFold(kind, "pet"):
		if pet := p.Pet(); pet != nil {
			return pet.Character
		}
	case strings.EqualFold(kind, "summon"):
		if servitors := p.Servitors(); len(servitors) > 0 {
			return servitors[len(servitors)-1].Character
		}
	}
	return nil
}

// deleteScheme — "_bbsdeletescheme;<name>;<page>".
func (b *HomeBoard) deleteScheme(ctx context.Context, cmd string, s Session) string {
	rest, ok := strings.CutPrefix(cmd, "_bbsdeletescheme;")
	if !ok {
		rejectInvalid(cmd, "missing scheme name")
		return ""
	}
	name, _, _ := strings.Cut(rest, ";")

	b.schemes.DeleteScheme(s.Player().CharacterID(), name)
	return b.render(ctx, s, bufferMainPath, nil)
}

// renderEditor показывает редактор схемы: группы скиллов и скиллы выбранной группы.
func (b *HomeBoard) renderEditor(ctx context.Context, s Session, groupType, name string, page int) string {
	p := s.Player()
	skills, _ := b.schemes.Scheme(p.CharacterID(), name)

	count := fmt.Sprintf("%d / %d buffs, %d / %d dances/songs",
		schemebuffer.CountOf(skills, false), b.limits.MaxBuffAmount,
		schemebuffer.CountOf(skills, true), b.limits.MaxDanceAmount)

	return b.render(ctx, s, schemeEditorPath, html.DialogData{
		"schemename":     name,
		"count":          count,
		"typesframe":     b.typesFrame(groupType, name),
		"skilllistframe": b.skillListFrame(skills, groupType, name, page),
	})
}

// typesFrame — таблица групп скиллов, текущая группа без ссылки.
func (b *HomeBoard) typesFrame(groupType, name string) string {
	var sb strings.Builder
	sb.WriteString("<table>")

	for i, t := range b.schemes.SkillTypes() {
		if i%typeColumns == 0 {
			sb.WriteString("<tr>")
		}
		if strings.EqualFold(t, groupType) {
			fmt.Fprintf(&sb, "<td width=65>%s</td>", t)
		} else {
			fmt.Fprintf(&sb, `<td width=65><a action="bypass _bbseditscheme;%s;%s;1">%s</a></td>`, t, name, t)
		}
		if i%typeColumns == typeColumns-1 {
			sb.WriteString("</tr>")
		}
	}
	if n := len(b.schemes.SkillTypes()); n%typeColumns != 0 {
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table>")
	return sb.String()
}

// skillListFrame — страница скиллов группы, editorPageSize на страницу.
// page приводится к диапазону 1..maxPage.
func (b *HomeBoard) skillListFrame(selected []int32, groupType, name string, page int) string {
	ids := b.schemes.SkillIDsByType(groupType)
	if len(ids) == 0 {
		return "That group doesn't contain any skills."
	}

	maxPage := (len(ids) + editorPageSize - 1) / editorPageSize
	page = min(max(page, 1), maxPage)
	start := (page - 1) * editorPageSize
	end := min(start+editorPageSize, len(ids))

	var sb strings.Builder
	sb.WriteString("<table  cellpadding='4' cellspacing=5 width=90%>")

	col := 0
	for _, id := range ids[start:end] {
		tmpl := data.GetMaxLevelSkill(id)
		if tmpl == nil {
			continue
		}
		if col%editorColumns == 0 {
			sb.WriteString("<tr>")
		}

		desc := ""
		if bs := b.schemes.AvailableBuff(id); bs != nil {
			desc = bs.Description
		}

		fmt.Fprintf(&sb, `<td><img src="%s" width=32 height=32></td>`, tmpl.Icon)
		fmt.Fprintf(&sb, `<td>%s<br1><font color="B09878">%s</font></td>`, tmpl.Name, desc)
		if slices.Contains(selected, id) {
			fmt.Fprintf(&sb, `<td><button action="bypass _bbsskillunselect;%s;%s;%d;%d" width=32 height=32 back="L2UI_CH3.mapbutton_zoomout2" fore="L2UI_CH3.mapbutton_zoomout1"></td>`, groupType, name, id, page)
		} else {
			fmt.Fprintf(&sb, `<td><button action="bypass _bbsskillselect;%s;%s;%d;%d" width=32 height=32 back="L2UI_CH3.mapbutton_zoomin2" fore="L2UI_CH3.mapbutton_zoomin1"></td>`, groupType, name, id, page)
		}

		if col%editorColumns == editorColumns-1 {
			sb.WriteString("</tr>")
		}
		col++
	}
	if col%editorColumns != 0 {
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")

	if maxPage > 1 {
		sb.WriteString(pageFooter(groupType, name, page, maxPage))
	}
	return sb.String()
}

// pageFooter — ссылки на страницы группы, текущая без ссылки.
func pageFooter(groupType, name string, page, maxPage int) string {
	var sb strings.Builder
	sb.WriteString("<table width=90%><tr>")
	for i := 1; i <= maxPage; i++ {
		if i == page {
			fmt.Fprintf(&sb, "<td align=center>%d</td>", i)
			continue
		}
		fmt.Fprintf(&sb, `<td align=center><a action="bypass _bbseditscheme;%s;%s;%d">%d</a></td>`, groupType, name, i, i)
	}
	sb.WriteString("</tr></table>")
	return sb.String()
}

