package notifications_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/clock"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/idgen"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type NotificationsTestSuite struct {
	suite.Suite
	eventBus events.EventBus
	notifier *notifications.Bus
	inbox    *notifications.Inbox
	logs     *bytes.Buffer
	ctx      context.Context
}

func TestNotificationsSuite(t *testing.T) {
	suite.Run(t, new(NotificationsTestSuite))
}

func (s *NotificationsTestSuite) SetupTest() {
	s.eventBus = events.NewBus()
	s.ctx = context.Background()

	var err error
	s.notifier, err = notifications.NewBus(&notifications.BusConfig{
		EventBus:    s.eventBus,
		IDGenerator: idgen.NewSequential("ntf"),
		Clock:       &clock.Fixed{At: testTime},
	})
	s.Require().NoError(err)

	s.inbox, err = notifications.NewInbox(&notifications.InboxConfig{EventBus: s.eventBus, Capacity: 3})
	s.Require().NoError(err)

	s.logs = &bytes.Buffer{}
	notifications.NewLogSink(s.eventBus, slog.New(slog.NewJSONHandler(s.logs, nil)))
}

func (s *NotificationsTestSuite) notification(avatarID string, seq int64) *notifications.Notification {
	text := rewards.LaffBoost{Amount: 1}.Describe(nil, nil).WithFooter("Flippy", false)
	return &notifications.Notification{
		AvatarID:      avatarID,
		SequenceIndex: seq,
		SourceItemID:  4000,
		Kind:          rewards.KindLaffBoost.String(),
		Origin:        "Flippy",
		Text:          text,
		Markup:        text.Markup(),
	}
}

func (s *NotificationsTestSuite) TestNotifyFillsIdentity() {
	n := s.notification("toon_1", 0)

	s.Require().NoError(s.notifier.NotifyReward(s.ctx, n))

	s.Equal("ntf_1", n.ID)
	s.Equal(testTime, n.CreatedAt)
	s.Equal("ntf_1", n.GetID())
	s.Equal("notification", n.GetType())
}

func (s *NotificationsTestSuite) TestNotifyKeepsExistingIdentity() {
	n := s.notification("toon_1", 0)
	n.ID = "ntf_custom"
	n.CreatedAt = testTime.Add(-time.Hour)

	s.Require().NoError(s.notifier.NotifyReward(s.ctx, n))

	s.Equal("ntf_custom", n.ID)
	s.Equal(testTime.Add(-time.Hour), n.CreatedAt)
}

func (s *NotificationsTestSuite) TestInboxKeepsLatestPerAvatar() {
	for seq := int64(0); seq < 5; seq++ {
		s.Require().NoError(s.notifier.NotifyReward(s.ctx, s.notification("toon_1", seq)))
	}
	s.Require().NoError(s.notifier.NotifyReward(s.ctx, s.notification("toon_2", 0)))

	list := s.inbox.List("toon_1", 0)
	s.Require().Len(list, 3)
	s.Equal([]int64{2, 3, 4}, []int64{list[0].SequenceIndex, list[1].SequenceIndex, list[2].SequenceIndex})

	latest := s.inbox.List("toon_1", 1)
	s.Require().Len(latest, 1)
	s.Equal(int64(4), latest[0].SequenceIndex)

	s.Len(s.inbox.List("toon_2", 0), 1)
	s.Empty(s.inbox.List("toon_3", 0))
}

func (s *NotificationsTestSuite) TestInboxCloseStopsDelivery() {
	s.Require().NoError(s.inbox.Close())

	s.Require().NoError(s.notifier.NotifyReward(s.ctx, s.notification("toon_1", 0)))

	s.Empty(s.inbox.List("toon_1", 0))
}

func (s *NotificationsTestSuite) TestLogSink() {
	n := s.notification("toon_1", 9)
	n.Cues = []toon.Cue{{Kind: toon.CueEmote, Text: "Cry"}}

	s.Require().NoError(s.notifier.NotifyReward(s.ctx, n))

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &entry))
	s.Equal("reward notification", entry["msg"])
	s.Equal("toon_1", entry["avatar_id"])
	s.Equal(float64(9), entry["sequence_index"])
	s.Equal("laff_boost", entry["kind"])
	s.Equal("Increased your\nmax laff by +1!\n\nFrom: Flippy", entry["text"])
	s.Equal(float64(1), entry["cues"])
}

func (s *NotificationsTestSuite) TestInvalidNotification() {
	s.True(errors.IsInvalidArgument(s.notifier.NotifyReward(s.ctx, nil)))
	s.True(errors.IsInvalidArgument(s.notifier.NotifyReward(s.ctx, &notifications.Notification{})))
}

func (s *NotificationsTestSuite) TestConfigValidation() {
	_, err := notifications.NewBus(&notifications.BusConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = notifications.NewInbox(&notifications.InboxConfig{EventBus: s.eventBus, Capacity: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *NotificationsTestSuite) TestPublishFailure() {
	bus, err := notifications.NewBus(&notifications.BusConfig{EventBus: failingEventBus{}})
	s.Require().NoError(err)

	err = bus.NotifyReward(s.ctx, s.notification("toon_1", 0))
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

// failingEventBus rejects every publish
type failingEventBus struct{}

func (failingEventBus) Publish(_ context.Context, _ events.Event) error {
	return errors.Unavailable("bus closed")
}
func (failingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (failingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (failingEventBus) Unsubscribe(_ string) error { return nil }
func (failingEventBus) Clear(_ string)             {}
func (failingEventBus) ClearAll()                  {}
