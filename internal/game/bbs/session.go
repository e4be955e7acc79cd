package bbs

import (
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/model"
)

// Session — то, что доска может сделать с клиентом игрока.
// Реализуется сетевым слоем.
type Session interface {
	Player() *model.Player

	// SendMessage отправляет системное сообщение в чат.
	SendMessage(text string)

	// CloseBoard скрывает окно Community Board.
	CloseBoard()

	// SendMultisell открывает мультиселл. inventoryOnly — только предметы из инвентаря.
	SendMultisell(listID int32, inventoryOnly bool) error

	// SendBuyList отправляет buylist и список продажи.
	SendBuyList(listID int32) error

	// SendSkillAnimation показывает каст скилла игрока на цель.
	SendSkillAnimation(target *model.Character, skill *data.SkillTemplate)

	// SendTeleport перемещает игрока.
	SendTeleport(loc model.Location)

	// SendUserInfo обновляет клиенту статы игрока.
	SendUserInfo()
}
