package premium

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrInvalidDuration — добавляемое время премиума должно быть положительным.
var ErrInvalidDuration = errors.New("premium duration must be positive")

// Repository — хранилище дат окончания премиума.
type Repository interface {
	Load(ctx context.Context, account string) (time.Time, bool, error)
	Upsert(ctx context.Context, account string, end time.Time) error
	Delete(ctx context.Context, account string) error
}

// Holder — владелец флага премиума (игрок онлайн).
type Holder interface {
	AccountName() string
	SetPremiumStatus(v bool)
}

// Manager хранит даты окончания премиума аккаунтов и снимает статус по таймеру.
//
// Thread-safe.
type Manager struct {
	repo Repository
	now  func() time.Time

	// accounts сериализует чтение, запись в репозиторий и обновление кэша
	// по одному аккаунту. Берётся раньше mu.
	accounts map[string]*sync.Mutex

	mu      sync.Mutex
	expires map[string]time.Time
	timers  map[string]*time.Timer
	holders map[string][]Holder
}

// NewManager creates a Manager. repo may be nil (in-memory only).
func NewManager(repo Repository) *Manager {
	return &Manager{
		repo:     repo,
		now:      time.Now,
		accounts: make(map[string]*sync.Mutex),
		expires:  make(map[string]time.Time),
		timers:  make(map[string]*time.Timer),
		holders: make(map[string][]Holder),
	}
}

// accountLock возвращает мьютекс аккаунта.
func (m *Manager) accountLock(account string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.accounts[account]
	if !ok {
		l = &sync.Mutex{}
		m.accounts[account] = l
	}
	return l
}

// Load подгружает дату окончания аккаунта из репозитория в кэш.
func (m *Manager) Load(ctx context.Context, account string) error {
	if m.repo == nil {
		return nil
	}

	end, ok, err := m.repo.Load(ctx, account)
	if err != nil {
		return fmt.Errorf("loading premium for %q: %w", account, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.expires[account] = end
	} else {
		delete(m.expires, account)
	}
	return nil
}

// Expiration возвращает дату окончания премиума. Нулевое время — премиума нет.
func (m *Manager) Expiration(account string) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expires[account]
}

// HasPremium reports whether the account premium is active now.
func (m *Manager) HasPremium(account string) bool {
	return m.Expiration(account).After(m.now())
}

// AddPremiumTime продлевает премиум на d от max(now, текущее окончание)
// и сохраняет новую дату. Возвращает новую дату окончания.
func (m *Manager) AddPremiumTime(ctx context.Context, account string, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, ErrInvalidDuration
	}

	lock := m.accountLock(account)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	base := m.now()
	if cur := m.expires[account]; cur.After(base) {
		base = cur
	}
	end := base.Add(d)
	m.mu.Unlock()

	if m.repo != nil {
		if err := m.repo.Upsert(ctx, account, end); err != nil {
			return time.Time{}, fmt.Errorf("adding premium time for %q: %w", account, err)
		}
	}

	m.mu.Lock()
	m.expires[account] = end
	holders := m.holders[account]
	m.scheduleLocked(account, end)
	m.mu.Unlock()

	for _, h := range holders {
		h.SetPremiumStatus(true)
	}

	slog.Info("premium time added", "account", account, "until", end)
	return end, nil
}

// RemovePremium снимает премиум аккаунта немедленно.
func (m *Manager) RemovePremium(ctx context.Context, account string) error {
	lock := m.accountLock(account)
	lock.Lock()
	defer lock.Unlock()

	if m.repo != nil {
		if err := m.repo.Delete(ctx, account); err != nil {
			return fmt.Errorf("removing premium for %q: %w", account, err)
		}
	}

	m.expire(account, true)
	return nil
}

// OnLogin выставляет флаг премиума игроку и планирует его снятие по истечении.
func (m *Manager) OnLogin(ctx context.Context, h Holder) error {
	account := h.AccountName()
	if err := m.Load(ctx, account); err != nil {
		return err
	}

	m.mu.Lock()
	m.holders[account] = append(m.holders[account], h)
	end := m.expires[account]
	active := end.After(m.now())
	if active {
		m.scheduleLocked(account, end)
	}
	m.mu.Unlock()

	h.SetPremiumStatus(active)
	return nil
}

// OnLogout забывает игрока и отменяет таймер, если у аккаунта больше нет игроков онлайн.
func (m *Manager) OnLogout(h Holder) {
	account := h.AccountName()

	m.mu.Lock()
	defer m.mu.Unlock()

	holders := m.holders[account]
	for i, cur := range holders {
		if cur == h {
			holders = append(holders[:i], holders[i+1:]...)
			break
		}
	}
	if len(holders) > 0 {
		m.holders[account] = holders
		return
	}

	delete(m.holders, account)
	if t, ok := m.timers[account]; ok {
		t.Stop()
		delete(m.timers, account)
	}
}

// scheduleLocked (пере)запускает таймер снятия премиума. Вызывается под mu.
func (m *Manager) scheduleLocked(account string, end time.Time) {
	if t, ok := m.timers[account]; ok {
		t.Stop()
	}
	if len(m.holders[account]) == 0 {
		delete(m.timers, account)
		return
	}
	m.timers[account] = time.AfterFunc(end.Sub(m.now()), func() {
		m.expire(account, false)
	})
}

// expire снимает премиум. Без force срабатывание устаревшего таймера
// игнорируется, если окончание уже продлено.
func (m *Manager) expire(account string, force bool) {
	m.mu.Lock()
	if !force && m.expires[account].After(m.now()) {
		m.mu.Unlock()
		return
	}
	delete(m.expires, account)
	if t, ok := m.timers[account]; ok {
		t.Stop()
		delete(m.timers, account)
	}
	holders := append([]Holder(nil), m.holders[account]...)
	m.mu.Unlock()

	for _, h := range holders {
		h.SetPremiumStatus(false)
	}
	slog.Debug("premium expired", "account", account)
}
