package html

import (
	"fmt"
	"strconv"
)

// DialogManager находит HTML диалога NPC и страницы скриптов.
type DialogManager struct {
	cache *Cache
}

// NewDialogManager creates a DialogManager backed by the given Cache.
func NewDialogManager(cache *Cache) *DialogManager {
	return &DialogManager{cache: cache}
}

// GetNpcDialog возвращает HTML диалога NPC.
//
// Порядок поиска (для каждого сначала .htm, потом .html):
//  1. <npcType>/<npcID>
//  2. default/<npcID>
//  3. npcdefault
//
// Если ничего не найдено, возвращает FallbackHTML.
func (m *DialogManager) GetNpcDialog(npcType string, npcID int32, data DialogData) (string, error) {
	id := strconv.FormatInt(int64(npcID), 10)

	var candidates []string
	if npcType != "" {
		candidates = append(candidates, npcType+"/"+id)
	}
	candidates = append(candidates, "default/"+id, "npcdefault")

	for _, base := range candidates {
		if path, ok := m.resolve(base); ok {
			return m.cache.Execute(path, data)
		}
	}

	return m.FallbackHTML(data), nil
}

// GetDialogPage возвращает страницу "Chat N": <npcType>/<npcID>-<page>, затем default/<npcID>-<page>.
func (m *DialogManager) GetDialogPage(npcType string, npcID int32, page int, data DialogData) (string, error) {
	suffix := strconv.FormatInt(int64(npcID), 10) + "-" + strconv.Itoa(page)

	if npcType != "" {
		if path, ok := m.resolve(npcType + "/" + suffix); ok {
			return m.cache.Execute(path, data)
		}
	}
	if path, ok := m.resolve("default/" + suffix); ok {
		return m.cache.Execute(path, data)
	}

	return "", fmt.Errorf("dialog page not found: npcType=%s npcID=%d page=%d", npcType, npcID, page)
}

// GetScriptHtml рендерит файл скрипта: scripts/<dir>/<file>.
func (m *DialogManager) GetScriptHtml(dir, file string, data DialogData) (string, error) {
	path := "scripts/" + dir + "/" + file
	if !m.cache.Exists(path) {
		return "", fmt.Errorf("script html not found: %s", path)
	}
	return m.cache.Execute(path, data)
}

// ExecuteLink рендерит файл по прямому относительному пути.
func (m *DialogManager) ExecuteLink(link string, data DialogData) (string, error) {
	return m.cache.Execute(link, data)
}

// FallbackHTML returns a hardcoded dialog when no template is found.
func (m *DialogManager) FallbackHTML(data DialogData) string {
	name, _ := data["npcname"].(string)
	if name == "" {
		name = "NPC"
	}
	return "<html><body>" + name + ":<br>I have nothing to say to you.<br></body></html>"
}

func (m *DialogManager) resolve(base string) (string, bool) {
	for _, ext := range [...]string{".htm", ".html"} {
		if m.cache.Exists(base + ext) {
			return base + ext, true
		}
	}
	return "", false
}
