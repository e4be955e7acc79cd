package bbs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotices struct {
	notices map[string]string
	err     error
}

func (n *fakeNotices) Notice(_ context.Context, clan string) (string, error) {
	return n.notices[clan], n.err
}

func (n *fakeNotices) SetNotice(_ context.Context, clan, notice string) error {
	if n.err != nil {
		return n.err
	}
	if n.notices == nil {
		n.notices = make(map[string]string)
	}
	n.notices[clan] = notice
	return nil
}

func noticeArgs(action, text string) [5]string {
	return [5]string{action, "", "", text, text}
}

func TestRegionBoard(t *testing.T) {
	b := NewRegionBoard(newTestCache(t))
	s := newFakeSession(t)
	ctx := context.Background()

	out := b.OnCommand(ctx, "_bbsloc", s)
	require.True(t, strings.HasPrefix(out, "REGIONS "), out)
	assert.Contains(t, out, `<a action="bypass _bbsloc;0">Gludio</a>`)
	assert.Contains(t, out, `<a action="bypass _bbsloc;8">Schuttgart</a>`)
	assert.Contains(t, out, "0%")

	assert.Equal(t, "REGION Giran", b.OnCommand(ctx, "_bbsloc;2", s))

	for _, cmd := range []string{"_bbsloc;9", "_bbsloc;-1", "_bbsloc;x", "_bbsloc;", "_bbslocX"} {
		assert.Empty(t, b.OnCommand(ctx, cmd, s), cmd)
	}
}

func TestClanBoard_Page(t *testing.T) {
	notices := &fakeNotices{notices: map[string]string{"Knights": "Siege <today>\nat 20:00"}}
	b := NewClanBoard(newTestCache(t), notices)
	ctx := context.Background()

	t.Run("no clan", func(t *testing.T) {
		s := newFakeSession(t)
		assert.Equal(t, "CLAN No clan: You are not a member of any clan.", b.OnCommand(ctx, "_bbsclan", s))
	})

	t.Run("member", func(t *testing.T) {
		s := newFakeSession(t)
		s.player.SetClanName("Knights")
		assert.Equal(t, "CLAN Knights: Siege &lt;today&gt;<br1>at 20:00", b.OnCommand(ctx, "_bbsclan", s))
	})

	t.Run("leader without notice", func(t *testing.T) {
		s := newFakeSession(t)
		s.player.SetClanName("Dragons")
		s.player.SetClanLeader(true)
		assert.Equal(t, "CLAN Dragons: No clan notices available. EDIT", b.OnCommand(ctx, "_bbsclan", s))
	})

	t.Run("repository error", func(t *testing.T) {
		broken := NewClanBoard(newTestCache(t), &fakeNotices{err: errors.New("timeout")})
		s := newFakeSession(t)
		s.player.SetClanName("Knights")
		assert.Equal(t, "CLAN Knights: No clan notices available.", broken.OnCommand(ctx, "_bbsclan", s))
	})
}

func TestClanBoard_OnWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("leader saves notice", func(t *testing.T) {
		notices := &fakeNotices{}
		b := NewClanBoard(newTestCache(t), notices)
		s := newFakeSession(t)
		s.player.SetClanName("Knights")
		s.player.SetClanLeader(true)

		out := b.OnWrite(ctx, s, "Notice", noticeArgs("Set", "  Gather at Giran  "))
		assert.Equal(t, "CLAN Knights: Gather at Giran EDIT", out)
		assert.Equal(t, "Gather at Giran", notices.notices["Knights"])
		assert.Equal(t, []string{"The clan notice has been saved."}, s.messages)
	})

	t.Run("member is refused", func(t *testing.T) {
		notices := &fakeNotices{}
		b := NewClanBoard(newTestCache(t), notices)
		s := newFakeSession(t)
		s.player.SetClanName("Knights")

		out := b.OnWrite(ctx, s, "Notice", noticeArgs("Set", "hijack"))
		assert.Equal(t, "CLAN Knights: No clan notices available.", out)
		assert.Empty(t, notices.notices)
		assert.Equal(t, []string{"Only the clan leader can edit the clan notice."}, s.messages)
	})

	t.Run("too long", func(t *testing.T) {
		notices := &fakeNotices{}
		b := NewClanBoard(newTestCache(t), notices)
		s := newFakeSession(t)
		s.player.SetClanName("Knights")
		s.player.SetClanLeader(true)

		b.OnWrite(ctx, s, "Notice", noticeArgs("Set", strings.Repeat("я", MaxClanNoticeLength+1)))
		assert.Empty(t, notices.notices)
		assert.Equal(t, []string{"The clan notice is too long."}, s.messages)

		s.messages = nil
		b.OnWrite(ctx, s, "Notice", noticeArgs("Set", strings.Repeat("я", MaxClanNoticeLength)))
		assert.Equal(t, []string{"The clan notice has been saved."}, s.messages)
	})

	t.Run("unknown action", func(t *testing.T) {
		notices := &fakeNotices{}
		b := NewClanBoard(newTestCache(t), notices)
		s := newFakeSession(t)
		s.player.SetClanName("Knights")
		s.player.SetClanLeader(true)

		assert.Equal(t, "CLAN Knights: No clan notices available. EDIT", b.OnWrite(ctx, s, "Notice", noticeArgs("Del", "x")))
		assert.Empty(t, notices.notices)
		assert.Empty(t, s.messages)
	})

	t.Run("other url", func(t *testing.T) {
		b := NewClanBoard(newTestCache(t), &fakeNotices{})
		assert.Empty(t, b.OnWrite(ctx, newFakeSession(t), "Topic", noticeArgs("Set", "x")))
	})
}

func TestPageBoards(t *testing.T) {
	cache := newTestCache(t)
	s := newFakeSession(t)
	ctx := context.Background()

	tests := []struct {
		board *PageBoard
		cmd   string
		want  string
	}{
		{NewMemoBoard(cache), "_bbsmemo", "MEMO Hero"},
		{NewMemoBoard(cache), "_bbstopics;1", "MEMO Hero"},
		{NewMailBoard(cache), "_bbsmail", "MAIL Hero"},
		{NewFriendsBoard(cache), "_bbsfriends", "FRIENDS Hero"},
		{NewFriendsBoard(cache), "_bbsfriendsX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.OnCommand(ctx, tt.cmd, s))
		})
	}
}

func TestNavigationBoards_ThroughHandler(t *testing.T) {
	env := newTestHomeBoard(t, nil)
	cache := newTestCache(t)
	notices := &fakeNotices{}
	h := NewHandler(env.history,
		env.board,
		NewRegionBoard(cache),
		NewClanBoard(cache, notices),
		NewMemoBoard(cache),
		NewMailBoard(cache),
		NewFriendsBoard(cache),
	)
	s := newFakeSession(t)
	s.player.SetClanName("Knights")
	s.player.SetClanLeader(true)
	ctx := context.Background()

	for _, cmd := range []string{"_bbsloc", "_bbsclan", "_bbsmemo", "_bbsmail", "_bbsfriends"} {
		assert.True(t, h.IsBoardCommand(cmd), cmd)
		assert.NotEmpty(t, h.HandleCommand(ctx, cmd, s), cmd)
	}

	out := h.HandleWrite(ctx, s, "Notice", noticeArgs("Set", "Raid at nine"))
	assert.Equal(t, "CLAN Knights: Raid at nine EDIT", out)
	assert.Equal(t, "Raid at nine", notices.notices["Knights"])
}
