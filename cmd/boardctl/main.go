// boardctl — консольный клиент Community Board: персонаж из базы,
// bypass'ы со stdin или из -cmd, ответы сервера в stdout.
//
// Usage:
//
//	go run ./cmd/boardctl -char Hero
//	go run ./cmd/boardctl -char Hero -cmd _bbshome
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/la2go-board/internal/config"
	"github.com/udisondev/la2go-board/internal/data"
	"github.com/udisondev/la2go-board/internal/db"
	"github.com/udisondev/la2go-board/internal/game/bbs"
	"github.com/udisondev/la2go-board/internal/game/premium"
	"github.com/udisondev/la2go-board/internal/game/quest"
	"github.com/udisondev/la2go-board/internal/game/quest/custom"
	"github.com/udisondev/la2go-board/internal/game/schemebuffer"
	"github.com/udisondev/la2go-board/internal/game/skill"
	"github.com/udisondev/la2go-board/internal/gameserver"
	"github.com/udisondev/la2go-board/internal/html"
	"github.com/udisondev/la2go-board/internal/metrics"
	"github.com/udisondev/la2go-board/internal/model"
	"github.com/udisondev/la2go-board/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

// effectTick — шаг таймера бафов.
const effectTick = time.Second

// saveTimeout — сколько ждём финального сохранения после остановки.
const saveTimeout = 10 * time.Second

func main() {
	charName := flag.String("char", "", "character name to log in with")
	command := flag.String("cmd", "", "run one bypass and exit (default: read bypasses from stdin)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *charName, *command); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, charName, command string) error {
	if charName == "" {
		return errors.New("-char is required")
	}

	cfgPath := GameConfigPath
	if p := os.Getenv("LA2GO_GAME_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	// Логи в stderr: stdout занят страницами доски.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading static data: %w", err)
	}

	htmlCache, err := html.NewCache(cfg.HTMLDir, cfg.LazyHTML)
	if err != nil {
		return fmt.Errorf("loading html: %w", err)
	}
	slog.Info("html cache ready", "dir", cfg.HTMLDir, "files", htmlCache.Len())

	pool := database.Pool()
	charRepo := db.NewCharacterRepository(pool)
	itemRepo := db.NewItemRepository(pool)
	favorites := db.NewFavoriteRepository(pool)

	schemes := schemebuffer.NewTable(cfg.Buffer, db.NewSchemeRepository(pool))
	if err := schemes.Load(ctx); err != nil {
		return fmt.Errorf("loading schemes: %w", err)
	}

	player, err := loadPlayer(ctx, charRepo, itemRepo, charName)
	if err != nil {
		return err
	}

	premiumMgr := premium.NewManager(db.NewPremiumRepository(pool))
	if err := premiumMgr.OnLogin(ctx, player); err != nil {
		return fmt.Errorf("loading premium: %w", err)
	}

	effects := skill.NewRegistry()
	history := bbs.NewBypassHistory()
	clans := db.NewClanRepository(pool)
	board := bbs.NewHandler(history,
		bbs.NewHomeBoard(bbs.HomeDeps{
			Config:    cfg,
			HTML:      htmlCache,
			Schemes:   schemes,
			Premium:   premiumMgr,
			Effects:   effects,
			History:   history,
			Favorites: favorites,
			Clans:     clans,
		}),
		bbs.NewMerchantBoard(htmlCache, favorites, history),
		bbs.NewRegionBoard(htmlCache),
		bbs.NewClanBoard(htmlCache, clans),
		bbs.NewMemoBoard(htmlCache),
		bbs.NewMailBoard(htmlCache),
		bbs.NewFriendsBoard(htmlCache),
	)

	dialogs := html.NewDialogManager(htmlCache)
	quests := quest.NewManager(dialogs)
	if err := custom.RegisterAll(quests); err != nil {
		return fmt.Errorf("registering scripts: %w", err)
	}

	w := world.New()
	w.AddPlayer(player)
	npc, err := w.SpawnNpc(custom.CurrencyManagerNpcID, "Currency Manager", "", player.Location())
	if err != nil {
		return fmt.Errorf("spawning currency manager: %w", err)
	}
	slog.Info("npc spawned",
		"npc", npc.Name(),
		"bypass", fmt.Sprintf("npc_%d_Chat 0", npc.ObjectID()))

	handler := gameserver.NewHandler(board, quests, dialogs, w)
	session := gameserver.NewSession(player, newConsoleSender(os.Stdout))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()

		var lines <-chan string
		if command != "" {
			lines = readLines(gctx, strings.NewReader(command))
		} else {
			lines = readLines(gctx, os.Stdin)
		}
		return runConsole(gctx, handler, session, lines)
	})

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("starting metrics server", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if cfg.SchemeFlushInterval > 0 {
		g.Go(func() error {
			slog.Info("starting scheme flush loop", "interval", cfg.SchemeFlushInterval)
			runEvery(gctx, cfg.SchemeFlushInterval, func() {
				if err := schemes.Save(gctx); err != nil {
					slog.Error("flushing schemes", "error", err)
				}
			})
			return nil
		})
	}

	g.Go(func() error {
		runEvery(gctx, effectTick, func() { effects.Tick(int32(effectTick.Milliseconds())) })
		return nil
	})

	waitErr := g.Wait()

	handler.Disconnect(session)
	premiumMgr.OnLogout(player)
	effects.Remove(player.ObjectID())

	saveCtx, saveCancel := context.WithTimeout(context.Background(), saveTimeout)
	defer saveCancel()
	if err := savePlayer(saveCtx, charRepo, itemRepo, schemes, player); err != nil {
		return errors.Join(waitErr, err)
	}
	slog.Info("character saved", "char", player.Name())

	if waitErr != nil {
		return fmt.Errorf("server error: %w", waitErr)
	}
	return nil
}

func loadPlayer(ctx context.Context, chars *db.CharacterRepository, items *db.ItemRepository, name string) (*model.Player, error) {
	player, err := chars.LoadByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loading character: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("character %q not found", name)
	}

	inv, err := items.LoadInventory(ctx, player.CharacterID())
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}
	for _, it := range inv {
		if err := player.Inventory().AddItem(it); err != nil {
			return nil, fmt.Errorf("adding item %d: %w", it.ObjectID(), err)
		}
	}

	slog.Info("character loaded",
		"char", player.Name(),
		"level", player.Level(),
		"items", len(inv))
	return player, nil
}

func savePlayer(ctx context.Context, chars *db.CharacterRepository, items *db.ItemRepository, schemes *schemebuffer.Table, p *model.Player) error {
	if err := chars.Save(ctx, p); err != nil {
		return fmt.Errorf("saving character: %w", err)
	}
	if err := items.ReplaceInventory(ctx, p.CharacterID(), p.Inventory().GetItems()); err != nil {
		return fmt.Errorf("saving inventory: %w", err)
	}
	if err := schemes.Save(ctx); err != nil {
		return fmt.Errorf("saving schemes: %w", err)
	}
	return nil
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Exposer())
	return mux
}

// runEvery вызывает fn каждые d до отмены ctx.
func runEvery(ctx context.Context, d time.Duration, fn func()) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
