package skill

// Effect — эффект скилла, висящий на цели.
// OnStart вызывается при наложении, OnExit при снятии или истечении.
type Effect interface {
	Name() string
	OnStart(casterObjID, targetObjID uint32)
	OnExit(casterObjID, targetObjID uint32)
}

// ActiveEffect — наложенный эффект с таймером и abnormal-параметрами для стакинга.
type ActiveEffect struct {
	CasterObjID   uint32
	TargetObjID   uint32
	SkillID       int32
	SkillLevel    int32
	Effect        Effect
	RemainingMs   int32
	AbnormalType  string
	AbnormalLevel int32
	IsDance       bool
}

// IsExpired returns true if the effect duration has elapsed.
func (ae *ActiveEffect) IsExpired() bool {
	return ae.RemainingMs <= 0
}

// Tick уменьшает оставшееся время. Возвращает false если эффект истёк.
func (ae *ActiveEffect) Tick(deltaMs int32) bool {
	ae.RemainingMs -= deltaMs
	return ae.RemainingMs > 0
}
