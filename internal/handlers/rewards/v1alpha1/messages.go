package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/LittlestCube/toontown-archipelago/internal/entities/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
)

// Request messages

// ItemMessage is one received item on the wire
type ItemMessage struct {
	ItemID     int64  `json:"item_id"`
	ItemName   string `json:"item_name,omitempty"`
	OriginName string `json:"origin_name,omitempty"`
	IsLocal    bool   `json:"is_local,omitempty"`
}

// DeliverItemsRequest carries a received-items batch
type DeliverItemsRequest struct {
	AvatarID   string        `json:"avatar_id"`
	StartIndex int64         `json:"start_index"`
	Items      []ItemMessage `json:"items"`
}

// DeliverItemRequest carries one item at an explicit index
type DeliverItemRequest struct {
	AvatarID      string      `json:"avatar_id"`
	SequenceIndex int64       `json:"sequence_index"`
	Item          ItemMessage `json:"item"`
}

// AvatarRequest addresses an avatar, naming it on create
type AvatarRequest struct {
	AvatarID string `json:"avatar_id"`
	Name     string `json:"name,omitempty"`
}

// ListNotificationsRequest asks for an avatar's latest notifications
type ListNotificationsRequest struct {
	AvatarID string `json:"avatar_id"`
	Limit    int    `json:"limit,omitempty"`
}

// Response messages

// NotificationMessage is a notification on the wire
type NotificationMessage struct {
	ID            string       `json:"id"`
	SequenceIndex int64        `json:"sequence_index"`
	ItemID        int64        `json:"item_id"`
	Kind          string       `json:"kind"`
	Origin        string       `json:"origin"`
	IsLocal       bool         `json:"is_local"`
	Text          string       `json:"text"`
	Markup        string       `json:"markup"`
	Icon          rewards.Icon `json:"icon"`
	Cues          []toon.Cue   `json:"cues,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
}

// ItemResultMessage reports one delivered item
type ItemResultMessage struct {
	SequenceIndex int64                `json:"sequence_index"`
	ItemID        int64                `json:"item_id"`
	Kind          string               `json:"kind"`
	Skipped       bool                 `json:"skipped"`
	Notification  *NotificationMessage `json:"notification,omitempty"`
}

// DeliverItemsResponse reports a delivered batch
type DeliverItemsResponse struct {
	Results []*ItemResultMessage `json:"results"`
	Toon    *toon.Toon           `json:"toon"`
}

// DeliverItemResponse reports a single delivered item
type DeliverItemResponse struct {
	Result *ItemResultMessage `json:"result"`
	Toon   *toon.Toon         `json:"toon"`
}

// ClaimVictoryResponse reports the recorded victory location
type ClaimVictoryResponse struct {
	LocationID int        `json:"location_id"`
	Toon       *toon.Toon `json:"toon"`
}

// AvatarResponse carries an avatar's state
type AvatarResponse struct {
	Toon *toon.Toon `json:"toon"`
}

// ListNotificationsResponse carries notifications oldest first
type ListNotificationsResponse struct {
	Notifications []*NotificationMessage `json:"notifications"`
}

// Decode fills a request message from a struct
func Decode(in *structpb.Struct, dst any) error {
	if in == nil {
		return errors.InvalidArgument("request is required")
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// Encode turns a message into a struct
func Encode(src any) (*structpb.Struct, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

func (m ItemMessage) toItem() delivery.Item {
	return delivery.Item{
		ItemID:     m.ItemID,
		ItemName:   m.ItemName,
		OriginName: m.OriginName,
		IsLocal:    m.IsLocal,
	}
}

func convertNotification(n *notifications.Notification) *NotificationMessage {
	if n == nil {
		return nil
	}
	msg := &NotificationMessage{
		ID:            n.ID,
		SequenceIndex: n.SequenceIndex,
		ItemID:        n.SourceItemID,
		Kind:          n.Kind,
		Origin:        n.Origin,
		IsLocal:       n.IsLocal,
		Text:          n.Text.Plain(),
		Markup:        n.Markup,
		Icon:          n.Text.Icon,
		Cues:          n.Cues,
	}
	if !n.CreatedAt.IsZero() {
		msg.CreatedAt = n.CreatedAt.UTC().Format(time.RFC3339)
	}
	return msg
}

func convertResult(r *delivery.ItemResult) *ItemResultMessage {
	return &ItemResultMessage{
		SequenceIndex: r.SequenceIndex,
		ItemID:        r.ItemID,
		Kind:          r.Kind.String(),
		Skipped:       r.Skipped,
		Notification:  convertNotification(r.Notification),
	}
}
