package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики Community Board и NPC скриптов:
// - bbs_commands_total: обработанные команды (board, command prefix)
// - bbs_rejected_total: отклонённые запросы (reason)
// - bbs_currency_spent_total: потраченная валюта (service)
// - npc_script_events_total: события NPC скриптов (script, event)
// - client_packets_total: клиентские пакеты (opcode)
var (
	BoardCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bbs_commands_total", Help: "Community board commands handled by board and command prefix"},
		[]string{"board", "command"},
	)
	BoardRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bbs_rejected_total", Help: "Community board requests rejected by reason"},
		[]string{"reason"},
	)
	CurrencySpent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bbs_currency_spent_total", Help: "Currency items destroyed by community board services"},
		[]string{"service"},
	)
	ScriptEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "npc_script_events_total", Help: "NPC script events by script and event"},
		[]string{"script", "event"},
	)
	ClientPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "client_packets_total", Help: "Client packets received by opcode"},
		[]string{"opcode"},
	)
)

// Причины отказа для BoardRejected.
const (
	ReasonCombat   = "combat"
	ReasonKarma    = "karma"
	ReasonCurrency = "currency"
	ReasonDisabled = "disabled"
	ReasonInvalid  = "invalid"
)

func init() {
	prometheus.MustRegister(BoardCommands, BoardRejected, CurrencySpent, ScriptEvents, ClientPackets)
}

// Exposer возвращает стандартный Prometheus HTTP handler.
func Exposer() http.Handler { return promhttp.Handler() }
